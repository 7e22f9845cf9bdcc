package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings is the singleton configuration row for the public site.
// Exactly one row exists; updates always target "the" row, never an id
// supplied by a caller.
type SiteSettings struct {
	ID              string `gorm:"primaryKey;size:36"`
	SiteName        string `gorm:"column:site_name;size:255"`
	SiteDescription string `gorm:"column:site_description;type:text"`
	// ContactEmail is the destination for consultation notifications.
	ContactEmail  string `gorm:"column:contact_email;size:255"`
	ContactPhone  string `gorm:"column:contact_phone;size:50"`
	Address       string `gorm:"type:text"`
	BusinessHours string `gorm:"column:business_hours;size:255"`
	SocialLinks   JSONMap `gorm:"column:social_links;type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName keeps the table singular-free and explicit.
func (SiteSettings) TableName() string {
	return "site_settings"
}

// BeforeCreate assigns a server-side id when none is set.
func (s *SiteSettings) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	return nil
}
