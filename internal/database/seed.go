package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sandeepkv93/go-service-template/internal/domain"
)

// Seed inserts demo users for local development. Existing rows are left
// untouched, so seeding is safe to run repeatedly.
func Seed(db *gorm.DB, count int) error {
	if count <= 0 {
		count = 3
	}
	for i := 1; i <= count; i++ {
		user := domain.User{
			Email:    fmt.Sprintf("demo%d@example.com", i),
			Username: fmt.Sprintf("demo%d", i),
			FullName: fmt.Sprintf("Demo User %d", i),
			IsActive: true,
		}
		if err := db.Where(domain.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
	}
	return nil
}
