package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionStatus is the admin triage state of a contact submission.
type SubmissionStatus string

const (
	// SubmissionStatusNew is the initial status of every submission.
	SubmissionStatusNew SubmissionStatus = "new"
	// SubmissionStatusRead marks a submission an admin has looked at.
	SubmissionStatusRead SubmissionStatus = "read"
	// SubmissionStatusResponded marks a submission that got a reply.
	SubmissionStatusResponded SubmissionStatus = "responded"
	// SubmissionStatusArchived marks a submission kept for the record only.
	SubmissionStatusArchived SubmissionStatus = "archived"
)

// ValidSubmissionStatus reports whether s is one of the known statuses.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusRead, SubmissionStatusResponded, SubmissionStatusArchived:
		return true
	default:
		return false
	}
}

// ContactSubmission is a consultation request sent through the public form.
// Rows are created once by the form; only the status is mutated afterwards.
type ContactSubmission struct {
	ID      string `gorm:"primaryKey;size:36"`
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;not null"`
	Phone   string `gorm:"size:50"`
	Subject string `gorm:"size:100"`
	Message string `gorm:"type:text"`
	Status  SubmissionStatus `gorm:"type:varchar(20);not null;default:'new'"`

	CreatedAt time.Time
}

// BeforeCreate assigns a server-side id and the initial status.
func (s *ContactSubmission) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	if s.Status == "" {
		s.Status = SubmissionStatusNew
	}

	return nil
}
