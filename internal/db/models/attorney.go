package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attorney represents a member of the firm shown on the attorneys pages.
// The slug is the public lookup key and must stay unique and URL-safe.
type Attorney struct {
	ID       string `gorm:"primaryKey;size:36"`
	Name     string `gorm:"size:255;not null"`
	Title    string `gorm:"size:255"`
	Bio      string `gorm:"type:text"`
	Email    string `gorm:"size:255"`
	Phone    string `gorm:"size:50"`
	ImageURL string `gorm:"column:image_url;size:512"`
	// Ordered display lists, stored as JSON.
	Expertise  StringList `gorm:"type:text"`
	Education  StringList `gorm:"type:text"`
	Experience StringList `gorm:"type:text"`
	Slug       string     `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BeforeCreate assigns a server-side id when none is set.
func (a *Attorney) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	return nil
}
