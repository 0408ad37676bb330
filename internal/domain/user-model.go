package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	DisplayName  string  `json:"display_name"`
	Phone        *string `json:"phone,omitempty"`
	Status       string  `gorm:"type:varchar(20);not null;default:active" json:"status"`

	EmailVerifiedAt            *time.Time `json:"email_verified_at,omitempty"`
	VerificationToken          string     `gorm:"index" json:"-"`
	VerificationTokenExpiresAt *time.Time `json:"-"`
	ResetTokenHash             string     `gorm:"index" json:"-"`
	ResetTokenExpiresAt        *time.Time `json:"-"`

	gorm.Model
}
