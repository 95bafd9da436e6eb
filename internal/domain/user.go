package domain

// User Model
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`                          // Primary key
	Username     string     `gorm:"size:250;unique;not null" json:"username"`      // Unique username
	Email        string     `gorm:"size:250;unique;not null" json:"email"`         // Unique email
	PasswordHash string     `gorm:"size:250;not null" json:"-"`                    // Bcrypt hash, never serialized
	Favorites    []Favorite `gorm:"constraint:OnDelete:CASCADE;" json:"favorites"` // One-to-many relationship with Favorite
}
