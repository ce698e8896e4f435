package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sandeepkv93/go-service-template/internal/domain"
	"github.com/sandeepkv93/go-service-template/internal/observability"
	"github.com/sandeepkv93/go-service-template/internal/repository"
)

var (
	ErrUserExists          = errors.New("user with this email or username already exists")
	ErrUserInvalidEmail    = errors.New("email is required")
	ErrUserInvalidUsername = errors.New("username is required")
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type CreateUserInput struct {
	Email    string
	Username string
	FullName string
	IsActive *bool
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordUserOperation(ctx, "create", outcome, time.Since(start)) }()

	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" {
		outcome = "bad_request"
		return nil, ErrUserInvalidEmail
	}
	if username == "" {
		outcome = "bad_request"
		return nil, ErrUserInvalidUsername
	}

	// Duplicate pre-check keeps the error uniform across sqlite and postgres;
	// the unique indexes remain the backstop under concurrent creates.
	if _, err := s.repo.FindByEmailOrUsername(email, username); err == nil {
		outcome = "duplicate"
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		outcome = "error"
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	user := &domain.User{Email: email, Username: username, FullName: strings.TrimSpace(input.FullName), IsActive: active}
	if err := s.repo.Create(user); err != nil {
		outcome = "error"
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordUserOperation(ctx, "get", outcome, time.Since(start)) }()

	u, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			outcome = "not_found"
		} else {
			outcome = "error"
		}
		return nil, err
	}
	return u, nil
}

func (s *UserServiceImpl) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordUserOperation(ctx, "list", outcome, time.Since(start)) }()

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	users, err := s.repo.List(skip, limit)
	if err != nil {
		outcome = "error"
		return nil, err
	}
	return users, nil
}
