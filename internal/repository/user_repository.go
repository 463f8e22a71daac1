package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mural-api/internal/model"
)

// ErrDuplicateEmail is returned by Create when the unique index on
// email rejects the row. Concurrent registrations for the same email
// are resolved here, at the store, not by any application-level check.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}
