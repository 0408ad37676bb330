package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ListingStatusOpen   = "open"
	ListingStatusClosed = "closed"
)

type Listing struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RecruiterID uint   `gorm:"not null;index" json:"recruiter_id"` // owner user_id
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Duration    string `gorm:"type:varchar(100)" json:"duration"`
	Stipend     string `gorm:"type:varchar(100)" json:"stipend"`
	Location    string `gorm:"type:varchar(255)" json:"location"`

	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	Eligibility    string         `gorm:"type:text" json:"eligibility"`
	Deadline       *time.Time     `json:"deadline,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:open" json:"status"`

	gorm.Model
}
