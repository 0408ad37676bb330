package dto

type UserProfileResponse struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Phone       *string `json:"phone,omitempty"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type StudentProfileInput struct {
	FullName       string   `json:"full_name" validate:"required"`
	University     string   `json:"university" validate:"required"`
	Degree         string   `json:"degree" validate:"required"`
	Branch         string   `json:"branch"`
	GraduationYear int      `json:"graduation_year" validate:"required"`
	Skills         []string `json:"skills"`
	Bio            string   `json:"bio"`
	LinkedinURL    *string  `json:"linkedin_url,omitempty"`
	GithubURL      *string  `json:"github_url,omitempty"`
	ResumeURL      *string  `json:"resume_url,omitempty"`
}

type RecruiterProfileInput struct {
	CompanyName  string  `json:"company_name" validate:"required"`
	ContactName  string  `json:"contact_name" validate:"required"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
	Website      *string `json:"website,omitempty"`
	Description  *string `json:"description,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
}
