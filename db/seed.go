package db

import (
	"time"

	"github.com/vacay-dev/vacay/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedDatabase loads a small demo data set for local development. It is a
// no-op when users already exist.
func SeedDatabase() error {
	var count int64

	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	users := []models.User{
		{Username: "Adriel", PasswordHash: string(hash), Avatar: "https://i.pravatar.cc/128?u=adriel"},
		{Username: "Rey", PasswordHash: string(hash), Avatar: "https://i.pravatar.cc/128?u=rey"},
		{Username: "Jamie", PasswordHash: string(hash), Avatar: "https://i.pravatar.cc/128?u=jamie"},
		{Username: "Monte", PasswordHash: string(hash), Avatar: "https://i.pravatar.cc/128?u=monte"},
	}

	if err := DB.Create(&users).Error; err != nil {
		return err
	}

	vacations := []models.Vacation{
		{Name: "Spring Break", Place: "South Padre Island", OwnerID: users[1].ID},
		{Name: "Summer Vacation", Description: "Summer getaway to some beach", Place: "Cancun", OwnerID: users[0].ID},
	}

	if err := DB.Create(&vacations).Error; err != nil {
		return err
	}

	memberships := []models.Membership{
		{UserID: users[1].ID, VacationID: vacations[0].ID},
		{UserID: users[0].ID, VacationID: vacations[0].ID},
		{UserID: users[0].ID, VacationID: vacations[1].ID},
		{UserID: users[3].ID, VacationID: vacations[1].ID},
	}

	if err := DB.Create(&memberships).Error; err != nil {
		return err
	}

	start := time.Date(time.Now().Year()+1, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	if err := DB.Create(&models.DateRange{Start: &start, End: &end, VacationID: vacations[1].ID}).Error; err != nil {
		return err
	}

	comments := []models.Comment{
		{Body: "Where's South Padre Island", CreatedBy: users[1].ID, VacationID: vacations[0].ID},
		{Body: "Cancun here we go", CreatedBy: users[0].ID, VacationID: vacations[1].ID},
		{Body: "OMG so pumped for cancun", CreatedBy: users[3].ID, VacationID: vacations[1].ID},
	}

	if err := DB.Create(&comments).Error; err != nil {
		return err
	}

	activities := []models.Activity{
		{Name: "Drink", VacationID: vacations[0].ID},
		{Name: "Xcaret", Description: "Wild life tour", VacationID: vacations[1].ID},
	}

	return DB.Create(&activities).Error
}
