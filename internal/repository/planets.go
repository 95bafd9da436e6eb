package repository

import (
	"context"
	"fmt"

	"starwars_api/internal/domain"

	"gorm.io/gorm"
)

// CreatePlanet inserts a planet and returns it with its new id
func (r *Repository) CreatePlanet(ctx context.Context, name string, description *string) (*domain.Planet, error) {
	planet := domain.Planet{Name: name, Description: description}
	if err := r.db.WithContext(ctx).Create(&planet).Error; err != nil {
		return nil, fmt.Errorf("create planet: %w", err)
	}
	return &planet, nil
}

// ListPlanets returns all planets ordered by id
func (r *Repository) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	planets := make([]domain.Planet, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

// GetPlanet returns ErrPlanetNotFound when id does not exist
func (r *Repository) GetPlanet(ctx context.Context, id uint) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, notFound(err, ErrPlanetNotFound)
	}
	return &planet, nil
}

// UpdatePlanet applies patch to the stored planet
func (r *Repository) UpdatePlanet(ctx context.Context, id uint, patch Patch) (*domain.Planet, error) {
	var planet domain.Planet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&planet, id).Error; err != nil {
			return err
		}
		patch.apply(&planet.Name, &planet.Description)
		return tx.Save(&planet).Error
	})
	if err != nil {
		return nil, notFound(err, ErrPlanetNotFound)
	}
	return &planet, nil
}

// DeletePlanet removes the planet; favorites pointing at it lose their planet_id
func (r *Repository) DeletePlanet(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Planet{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete planet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlanetNotFound
	}
	return nil
}
