package database

import (
	"github.com/sandeepkv93/go-service-template/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{})
}
