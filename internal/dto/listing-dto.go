package dto

import "time"

type ListingInput struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	Duration       string     `json:"duration"`
	Stipend        string     `json:"stipend"`
	Location       string     `json:"location"`
	RequiredSkills []string   `json:"required_skills"`
	Eligibility    string     `json:"eligibility"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// ListingPatch: all fields optional, only present fields are applied.
type ListingPatch struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	Stipend        *string    `json:"stipend,omitempty"`
	Location       *string    `json:"location,omitempty"`
	RequiredSkills *[]string  `json:"required_skills,omitempty"`
	Eligibility    *string    `json:"eligibility,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	Status         *string    `json:"status,omitempty"` // open | closed
}
