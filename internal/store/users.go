// Package store holds the typed repository functions for each entity. Every
// function issues a single query against the shared connection; the join
// logic lives in the view package, not here.
package store

import (
	"context"
	"errors"

	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/models"
	"gorm.io/gorm"
)

func UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	if err := db.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	if err := db.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func CreateUser(ctx context.Context, user *models.User) error {
	return db.DB.WithContext(ctx).Create(user).Error
}

// UpdateUser merges only the supplied columns into the row; absent fields
// keep their stored value.
func UpdateUser(ctx context.Context, id uint, updates map[string]interface{}) (*models.User, error) {
	if err := db.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return UserByID(ctx, id)
}

// IsNotFound reports whether err is the record-miss the stores surface for
// absent rows.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation. The
// membership and date-range inserts rely on this as the backstop behind
// their check-then-insert gates.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
