package domain

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application is one student's submission against one listing. The composite
// unique index is the real guard against double submission; the service layer
// only translates the resulting constraint violation.
type Application struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ListingID uint `gorm:"not null;index;uniqueIndex:uidx_applications_listing_student" json:"listing_id"`
	StudentID uint `gorm:"not null;index;uniqueIndex:uidx_applications_listing_student" json:"student_id"` // user_id

	CoverLetter  string  `gorm:"type:text;not null" json:"cover_letter"`
	PortfolioURL *string `gorm:"type:text" json:"portfolio_url,omitempty"`
	ResumeURL    *string `gorm:"type:text" json:"resume_url,omitempty"`

	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:applied" json:"status"`
	AppliedAt time.Time         `gorm:"autoCreateTime" json:"applied_at"`

	gorm.Model
}

func IsKnownApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusInterview,
		ApplicationStatusOffered, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
