package store

import (
	"context"

	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/models"
	"gorm.io/gorm"
)

func ActivityByID(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity

	if err := db.DB.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}

func ActivitiesForVacation(ctx context.Context, vacationID uint) ([]models.Activity, error) {
	var activities []models.Activity

	err := db.DB.WithContext(ctx).
		Where("vacation_id = ?", vacationID).
		Order("id").
		Find(&activities).Error

	if err != nil {
		return nil, err
	}

	return activities, nil
}

func CreateActivity(ctx context.Context, activity *models.Activity) error {
	return db.DB.WithContext(ctx).Create(activity).Error
}

func UpdateActivity(ctx context.Context, id uint, updates map[string]interface{}) (*models.Activity, error) {
	result := db.DB.WithContext(ctx).Model(&models.Activity{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return ActivityByID(ctx, id)
}

func DeleteActivity(ctx context.Context, id uint) (bool, error) {
	result := db.DB.WithContext(ctx).Unscoped().Delete(&models.Activity{}, id)

	return result.RowsAffected > 0, result.Error
}
