package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReadTime is used when a post is created without a reading time.
const DefaultReadTime = 5

// BlogPost represents an article on the public blog.
// PublishedAt is non-nil exactly when Published is true; the gateway keeps
// the two in sync on every publish state transition.
type BlogPost struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"uniqueIndex;size:255;not null"`
	Excerpt     string `gorm:"type:text"`
	Content     string `gorm:"type:text"`
	ImageURL    string `gorm:"column:image_url;size:512"`
	Author      string `gorm:"size:255"`
	Category    string `gorm:"size:100"`
	Tags        StringList `gorm:"type:text"`
	Published   bool
	PublishedAt *time.Time
	// ReadTime is the estimated reading time in minutes.
	ReadTime  int `gorm:"column:read_time"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a server-side id when none is set.
func (p *BlogPost) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	return nil
}
