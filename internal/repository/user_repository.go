package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/go-service-template/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByEmailOrUsername(email, username string) (*domain.User, error)
	List(offset, limit int) ([]domain.User, error)
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &GormUserRepository{db: db} }

func (r *GormUserRepository) Create(user *domain.User) error { return r.db.Create(user).Error }

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmailOrUsername(email, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.Where("email = ? OR username = ?", email, username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) List(offset, limit int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("id asc").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}
