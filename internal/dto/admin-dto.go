package dto

type CriterionResult struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
	Passed bool   `json:"passed"`
}

type RecruiterReviewResponse struct {
	UserID         uint              `json:"user_id"`
	CompanyName    string            `json:"company_name"`
	ContactName    string            `json:"contact_name"`
	ContactEmail   string            `json:"contact_email"`
	IsVerified     bool              `json:"is_verified"`
	AccountStatus  string            `json:"account_status"`
	ProfileScore   int               `json:"profile_score"`
	Recommendation string            `json:"recommendation"` // Strong | Moderate | Weak
	Criteria       []CriterionResult `json:"criteria"`
}

type RecruiterSummaryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Suspended int `json:"suspended"`
}

type AdminRecruitersResponse struct {
	Summary    RecruiterSummaryResponse  `json:"summary"`
	Recruiters []RecruiterReviewResponse `json:"recruiters"`
}

// Exactly one of the two fields must be present.
type ModerateRecruiterRequest struct {
	IsVerified *bool `json:"is_verified,omitempty"`
	Suspend    *bool `json:"suspend,omitempty"`
}
