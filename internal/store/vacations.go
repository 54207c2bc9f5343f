package store

import (
	"context"

	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/models"
	"gorm.io/gorm"
)

func VacationByID(ctx context.Context, id uint) (*models.Vacation, error) {
	var vacation models.Vacation

	if err := db.DB.WithContext(ctx).First(&vacation, id).Error; err != nil {
		return nil, err
	}

	return &vacation, nil
}

// CreateVacation inserts the vacation and its owner's membership in one
// transaction, so an owner is always a member of what they created.
func CreateVacation(ctx context.Context, vacation *models.Vacation) error {
	return db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vacation).Error; err != nil {
			return err
		}

		membership := models.Membership{
			UserID:     vacation.OwnerID,
			VacationID: vacation.ID,
		}

		return tx.Create(&membership).Error
	})
}

func UpdateVacation(ctx context.Context, id uint, updates map[string]interface{}) (*models.Vacation, error) {
	result := db.DB.WithContext(ctx).Model(&models.Vacation{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return VacationByID(ctx, id)
}

// DeleteVacation removes the vacation and every child row. The cascade is
// done in one transaction rather than left to FK actions, since sqlite does
// not enforce them unless the pragma is on.
func DeleteVacation(ctx context.Context, id uint) (bool, error) {
	var deleted bool

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&models.DateRange{},
			&models.Activity{},
			&models.Comment{},
			&models.Membership{},
		} {
			if err := tx.Unscoped().Where("vacation_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		result := tx.Unscoped().Delete(&models.Vacation{}, id)

		if result.Error != nil {
			return result.Error
		}

		deleted = result.RowsAffected > 0

		return nil
	})

	return deleted, err
}
