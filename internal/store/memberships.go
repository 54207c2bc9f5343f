package store

import (
	"context"

	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/models"
)

// VacationIDsForUser resolves the vacations a user belongs to, in join order.
func VacationIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint

	err := db.DB.WithContext(ctx).
		Model(&models.Membership{}).
		Where("user_id = ?", userID).
		Order("vacation_id").
		Distinct().
		Pluck("vacation_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}

// MembersOf lists the users in a vacation, excluding the viewer.
func MembersOf(ctx context.Context, vacationID, excludeUserID uint) ([]models.User, error) {
	var users []models.User

	err := db.DB.WithContext(ctx).
		Joins("JOIN memberships ON memberships.user_id = users.id").
		Where("memberships.vacation_id = ? AND users.id != ?", vacationID, excludeUserID).
		Order("users.id").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

func MembershipFor(ctx context.Context, userID, vacationID uint) (*models.Membership, error) {
	var membership models.Membership

	err := db.DB.WithContext(ctx).
		Where("user_id = ? AND vacation_id = ?", userID, vacationID).
		First(&membership).Error

	if err != nil {
		return nil, err
	}

	return &membership, nil
}

func AddMembership(ctx context.Context, userID, vacationID uint) error {
	membership := models.Membership{UserID: userID, VacationID: vacationID}

	return db.DB.WithContext(ctx).Create(&membership).Error
}

func RemoveMembership(ctx context.Context, userID, vacationID uint) (bool, error) {
	result := db.DB.WithContext(ctx).Unscoped().
		Where("user_id = ? AND vacation_id = ?", userID, vacationID).
		Delete(&models.Membership{})

	return result.RowsAffected > 0, result.Error
}
