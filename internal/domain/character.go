package domain

// Character Model
type Character struct {
	ID          uint    `gorm:"primaryKey" json:"id"`          // Primary key
	Name        string  `gorm:"size:250;not null" json:"name"` // Character name
	Description *string `gorm:"size:250" json:"description"`   // Optional description, null when absent
}
