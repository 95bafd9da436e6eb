package repository

import (
	"context"
	"fmt"

	"starwars_api/internal/domain"
	"starwars_api/internal/utils"

	"gorm.io/gorm"
)

// orderByID keeps preloaded favorites in insertion order
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// CreateUser hashes the password and inserts a new user
func (r *Repository) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{Username: username, Email: email, PasswordHash: hash}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.Favorites = []domain.Favorite{}
	return &user, nil
}

// ListUsers returns every user with its favorites
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0)
	if err := r.db.WithContext(ctx).Preload("Favorites", orderByID).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns one user with its favorites
func (r *Repository) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Preload("Favorites", orderByID).First(&user, id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}
