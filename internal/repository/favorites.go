package repository

import (
	"context"
	"errors"
	"fmt"

	"starwars_api/internal/domain"

	"gorm.io/gorm"
)

// ErrInvalidFavorite is returned when a favorite names both or neither target
var ErrInvalidFavorite = domain.ErrFavoriteTarget

// Target identifies what a favorite points at: a character or a planet
type Target struct {
	CharacterID *uint
	PlanetID    *uint
}

// CharacterTarget targets the character with the given id
func CharacterTarget(id uint) Target {
	return Target{CharacterID: &id}
}

// PlanetTarget targets the planet with the given id
func PlanetTarget(id uint) Target {
	return Target{PlanetID: &id}
}

// scope narrows a favorites query to the target column
func (t Target) scope(db *gorm.DB) *gorm.DB {
	if t.CharacterID != nil {
		db = db.Where("character_id = ?", *t.CharacterID)
	}
	if t.PlanetID != nil {
		db = db.Where("planet_id = ?", *t.PlanetID)
	}
	return db
}

// CreateFavorite links userID to target. Missing users or targets surface as
// foreign key failures from the store.
func (r *Repository) CreateFavorite(ctx context.Context, userID uint, target Target) (*domain.Favorite, error) {
	favorite := domain.Favorite{UserID: userID, CharacterID: target.CharacterID, PlanetID: target.PlanetID}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if errors.Is(err, domain.ErrFavoriteTarget) {
			return nil, ErrInvalidFavorite
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return &favorite, nil
}

// ListFavoritesByUser returns the favorites owned by userID ordered by id
func (r *Repository) ListFavoritesByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	favorites := make([]domain.Favorite, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// DeleteFavorite removes exactly one favorite matching (userID, target)
func (r *Repository) DeleteFavorite(ctx context.Context, userID uint, target Target) error {
	if (target.CharacterID == nil) == (target.PlanetID == nil) {
		return ErrInvalidFavorite
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var favorite domain.Favorite
		err := tx.Scopes(target.scope).Where("user_id = ?", userID).Order("id").First(&favorite).Error
		if err != nil {
			return notFound(err, ErrFavoriteNotFound)
		}
		if err := tx.Delete(&favorite).Error; err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		return nil
	})
}
