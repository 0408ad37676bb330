package domain

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StudentProfile struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName       string         `gorm:"type:varchar(255)" json:"full_name"`
	University     string         `gorm:"type:varchar(255)" json:"university"`
	Degree         string         `gorm:"type:varchar(100)" json:"degree"`
	Branch         string         `gorm:"type:varchar(100)" json:"branch"`
	GraduationYear int            `json:"graduation_year"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Bio            string         `gorm:"type:text" json:"bio"`
	LinkedinURL    *string        `gorm:"type:text" json:"linkedin_url,omitempty"`
	GithubURL      *string        `gorm:"type:text" json:"github_url,omitempty"`
	ResumeURL      *string        `gorm:"type:text" json:"resume_url,omitempty"`

	ProfileCompleted bool `gorm:"not null;default:false" json:"profile_completed"`

	gorm.Model
}
