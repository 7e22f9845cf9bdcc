package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultButtonText is used when modal content is created without one.
const DefaultButtonText = "Learn More"

// ModalContent is admin-configurable popup content shown behind "Learn More"
// triggers on the public pages, looked up by its logical key. Inactive rows
// are excluded from public lookup.
type ModalContent struct {
	ID         string `gorm:"primaryKey;size:36"`
	Key        string `gorm:"uniqueIndex;size:100;not null"`
	Title      string `gorm:"size:255;not null"`
	Content    string `gorm:"type:text"`
	ImageURL   string `gorm:"column:image_url;size:512"`
	ButtonText string `gorm:"column:button_text;size:100"`
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BeforeCreate assigns a server-side id when none is set.
func (m *ModalContent) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}
