package repository

import (
	"context"
	"fmt"

	"starwars_api/internal/domain"

	"gorm.io/gorm"
)

// Patch carries the supplied fields of a partial Character or Planet update.
// Nil fields keep their stored value. ClearDescription sets the description
// to NULL and is ignored when Description is given.
type Patch struct {
	Name             *string
	Description      *string
	ClearDescription bool
}

// apply overwrites name and description with the supplied patch fields
func (p Patch) apply(name *string, description **string) {
	if p.Name != nil {
		*name = *p.Name
	}
	switch {
	case p.Description != nil:
		d := *p.Description
		*description = &d
	case p.ClearDescription:
		*description = nil
	}
}

// CreateCharacter inserts a character and returns it with its new id
func (r *Repository) CreateCharacter(ctx context.Context, name string, description *string) (*domain.Character, error) {
	character := domain.Character{Name: name, Description: description}
	if err := r.db.WithContext(ctx).Create(&character).Error; err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	return &character, nil
}

// ListCharacters returns all characters ordered by id
func (r *Repository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	characters := make([]domain.Character, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

// GetCharacter returns ErrCharacterNotFound when id does not exist
func (r *Repository) GetCharacter(ctx context.Context, id uint) (*domain.Character, error) {
	var character domain.Character
	if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
		return nil, notFound(err, ErrCharacterNotFound)
	}
	return &character, nil
}

// UpdateCharacter applies patch to the stored character
func (r *Repository) UpdateCharacter(ctx context.Context, id uint, patch Patch) (*domain.Character, error) {
	var character domain.Character
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&character, id).Error; err != nil {
			return err
		}
		patch.apply(&character.Name, &character.Description)
		return tx.Save(&character).Error
	})
	if err != nil {
		return nil, notFound(err, ErrCharacterNotFound)
	}
	return &character, nil
}

// DeleteCharacter removes the character; favorites pointing at it lose their character_id
func (r *Repository) DeleteCharacter(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Character{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete character: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCharacterNotFound
	}
	return nil
}
