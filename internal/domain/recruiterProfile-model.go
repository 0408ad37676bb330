package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RecruiterAccountActive    = "active"
	RecruiterAccountSuspended = "suspended"
)

// RecruiterProfile carries two independent moderation axes: is_verified
// (admin trust flag) and account_status (suspension). Suspending a verified
// recruiter does not clear is_verified.
type RecruiterProfile struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName  string  `gorm:"type:varchar(255)" json:"company_name"`
	ContactName  string  `gorm:"type:varchar(255)" json:"contact_name"`
	ContactEmail string  `gorm:"type:varchar(255)" json:"contact_email"`
	Website      *string `gorm:"type:text" json:"website,omitempty"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	LogoURL      *string `gorm:"type:text" json:"logo_url,omitempty"`

	IsVerified    bool       `gorm:"not null;default:false" json:"is_verified"`
	AccountStatus string     `gorm:"type:varchar(20);not null;default:active" json:"account_status"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	ReviewedBy    *uint      `json:"reviewed_by,omitempty"` // admin user_id

	gorm.Model
}
