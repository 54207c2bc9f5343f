package store

import (
	"context"

	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/models"
	"gorm.io/gorm"
)

func CommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment

	if err := db.DB.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// CommentsForVacation lists comments in insertion order.
func CommentsForVacation(ctx context.Context, vacationID uint) ([]models.Comment, error) {
	var comments []models.Comment

	err := db.DB.WithContext(ctx).
		Where("vacation_id = ?", vacationID).
		Order("id ASC").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func CreateComment(ctx context.Context, comment *models.Comment) error {
	return db.DB.WithContext(ctx).Create(comment).Error
}

func UpdateComment(ctx context.Context, id uint, updates map[string]interface{}) (*models.Comment, error) {
	result := db.DB.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return CommentByID(ctx, id)
}

func DeleteComment(ctx context.Context, id uint) (bool, error) {
	result := db.DB.WithContext(ctx).Unscoped().Delete(&models.Comment{}, id)

	return result.RowsAffected > 0, result.Error
}
