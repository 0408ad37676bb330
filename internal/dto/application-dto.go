package dto

type ApplyRequest struct {
	ListingID    uint    `json:"listing_id" validate:"required"`
	CoverLetter  string  `json:"cover_letter" validate:"required"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
	ResumeURL    *string `json:"resume_url,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied shortlisted interview offered rejected"`
}
