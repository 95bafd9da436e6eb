// Package repository holds every read and write against the relational store.
// Handlers receive a *Repository instead of touching *gorm.DB directly.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("record not found")

	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrCharacterNotFound = fmt.Errorf("%w: character", ErrNotFound)
	ErrPlanetNotFound    = fmt.Errorf("%w: planet", ErrNotFound)
	ErrFavoriteNotFound  = fmt.Errorf("%w: favorite", ErrNotFound)
)

// Repository wraps the injected database handle
type Repository struct {
	db *gorm.DB
}

// New creates a Repository on top of db
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// notFound maps gorm's not-found error to the entity-specific sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
