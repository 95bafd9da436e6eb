package domain

import (
	"errors" // Sentinel errors
	"time"   // Creation timestamp

	"gorm.io/gorm" // GORM ORM library
)

// ErrFavoriteTarget is returned when a favorite does not point at exactly one character or planet
var ErrFavoriteTarget = errors.New("favorite must reference exactly one character or planet")

// Favorite Model, the join between a User and either a Character or a Planet
type Favorite struct {
	ID          uint       `gorm:"primaryKey" json:"id"`                   // Primary key
	Date        time.Time  `gorm:"column:date;not null" json:"date"`       // Creation time in UTC
	UserID      uint       `gorm:"not null;index" json:"user_id"`          // Foreign key to User
	CharacterID *uint      `gorm:"index" json:"character_id"`              // Foreign key to Character, nil for planet favorites
	PlanetID    *uint      `gorm:"index" json:"planet_id"`                 // Foreign key to Planet, nil for character favorites
	Character   *Character `gorm:"constraint:OnDelete:SET NULL;" json:"-"` // Belongs-to Character
	Planet      *Planet    `gorm:"constraint:OnDelete:SET NULL;" json:"-"` // Belongs-to Planet
}

// BeforeCreate enforces the single-target rule and stamps the creation date
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if (f.CharacterID == nil) == (f.PlanetID == nil) {
		return ErrFavoriteTarget
	}
	if f.Date.IsZero() {
		f.Date = tx.NowFunc().UTC()
	}
	return nil
}
