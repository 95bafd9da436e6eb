package domain

// Planet Model
type Planet struct {
	ID          uint    `gorm:"primaryKey" json:"id"`          // Primary key
	Name        string  `gorm:"size:250;not null" json:"name"` // Planet name
	Description *string `gorm:"size:250" json:"description"`   // Optional description, null when absent
}
