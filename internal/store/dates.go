package store

import (
	"context"

	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/models"
	"gorm.io/gorm"
)

func DateRangeByID(ctx context.Context, id uint) (*models.DateRange, error) {
	var dates models.DateRange

	if err := db.DB.WithContext(ctx).First(&dates, id).Error; err != nil {
		return nil, err
	}

	return &dates, nil
}

// DateRangeForVacation returns the vacation's single date range, or a
// record-miss when none has been set.
func DateRangeForVacation(ctx context.Context, vacationID uint) (*models.DateRange, error) {
	var dates models.DateRange

	if err := db.DB.WithContext(ctx).Where("vacation_id = ?", vacationID).First(&dates).Error; err != nil {
		return nil, err
	}

	return &dates, nil
}

func CreateDateRange(ctx context.Context, dates *models.DateRange) error {
	return db.DB.WithContext(ctx).Create(dates).Error
}

func UpdateDateRange(ctx context.Context, id uint, updates map[string]interface{}) (*models.DateRange, error) {
	result := db.DB.WithContext(ctx).Model(&models.DateRange{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return DateRangeByID(ctx, id)
}

func DeleteDateRange(ctx context.Context, id uint) (bool, error) {
	result := db.DB.WithContext(ctx).Unscoped().Delete(&models.DateRange{}, id)

	return result.RowsAffected > 0, result.Error
}
