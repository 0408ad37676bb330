package dto

// Event keys double as Kafka message keys and notification kinds.
const (
	EventVerifyEmail       = "user.verify_email"
	EventResetPassword     = "user.reset_password"
	EventApplicationNew    = "application.created"
	EventApplicationStatus = "application.status_changed"
	EventRecruiterApproved = "recruiter.approved"
	EventRecruiterRevoked  = "recruiter.revoked"
	EventRecruiterSuspend  = "recruiter.suspended"
	EventRecruiterResume   = "recruiter.unsuspended"
)

type VerifyEmailEvent struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type ApplicationEvent struct {
	ApplicationID uint   `json:"application_id"`
	ListingID     uint   `json:"listing_id"`
	StudentID     uint   `json:"student_id"`
	Status        string `json:"status"`
}

type RecruiterEvent struct {
	RecruiterID uint `json:"recruiter_id"` // user_id
	AdminID     uint `json:"admin_id"`
}
