package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/interfaces"
	"github.com/InternHub/internhub-backend/internal/repository"
	"gorm.io/gorm"
)

type AdminService interface {
	ListRecruiters() (*dto.AdminRecruitersResponse, error)
	ModerateRecruiter(adminID uint, recruiterID uint, input dto.ModerateRecruiterRequest) (*domain.RecruiterProfile, error)
}

type adminService struct {
	recruiterRepo repository.RecruiterProfileRepository
	audit         repository.AuditLogRepository
	producer      interfaces.ProducerHandler
}

func NewAdminService(
	recruiterRepo repository.RecruiterProfileRepository,
	audit repository.AuditLogRepository,
	producer interfaces.ProducerHandler,
) AdminService {
	return &adminService{
		recruiterRepo: recruiterRepo,
		audit:         audit,
		producer:      producer,
	}
}

// ListRecruiters recomputes the summary from current rows on every fetch;
// nothing is incrementally maintained.
func (a *adminService) ListRecruiters() (*dto.AdminRecruitersResponse, error) {
	profiles, err := a.recruiterRepo.ListAll()
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminRecruitersResponse{
		Recruiters: make([]dto.RecruiterReviewResponse, 0, len(profiles)),
	}

	for i := range profiles {
		p := &profiles[i]
		score, recommendation, criteria := EvaluateApproval(p)

		resp.Recruiters = append(resp.Recruiters, dto.RecruiterReviewResponse{
			UserID:         p.UserID,
			CompanyName:    p.CompanyName,
			ContactName:    p.ContactName,
			ContactEmail:   p.ContactEmail,
			IsVerified:     p.IsVerified,
			AccountStatus:  p.AccountStatus,
			ProfileScore:   score,
			Recommendation: recommendation,
			Criteria:       criteria,
		})

		resp.Summary.Total++
		switch {
		case p.AccountStatus == domain.RecruiterAccountSuspended:
			resp.Summary.Suspended++
		case p.IsVerified:
			resp.Summary.Approved++
		default:
			resp.Summary.Pending++
		}
	}

	return resp, nil
}

// ModerateRecruiter applies one admin decision: verification grant/revoke or
// suspend/unsuspend. Each action is idempotent; re-applying the current state
// succeeds without error.
func (a *adminService) ModerateRecruiter(adminID uint, recruiterID uint, input dto.ModerateRecruiterRequest) (*domain.RecruiterProfile, error) {
	if adminID == 0 {
		return nil, ErrUnauthorized
	}
	if recruiterID == 0 {
		return nil, fmt.Errorf("%w: recruiter id is required", ErrValidation)
	}
	if (input.IsVerified == nil) == (input.Suspend == nil) {
		return nil, fmt.Errorf("%w: provide exactly one of is_verified or suspend", ErrValidation)
	}

	profile, err := a.recruiterRepo.FindByUserID(recruiterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recruiter", ErrNotFound)
		}
		return nil, err
	}

	var action, event string

	if input.IsVerified != nil {
		if err := a.recruiterRepo.SetVerified(recruiterID, *input.IsVerified, adminID); err != nil {
			return nil, err
		}
		profile.IsVerified = *input.IsVerified
		if *input.IsVerified {
			action, event = "recruiter.approved", dto.EventRecruiterApproved
		} else {
			action, event = "recruiter.revoked", dto.EventRecruiterRevoked
		}
	} else {
		status := domain.RecruiterAccountActive
		if *input.Suspend {
			status = domain.RecruiterAccountSuspended
		}
		if err := a.recruiterRepo.SetAccountStatus(recruiterID, status, adminID); err != nil {
			return nil, err
		}
		profile.AccountStatus = status
		if *input.Suspend {
			action, event = "recruiter.suspended", dto.EventRecruiterSuspend
		} else {
			action, event = "recruiter.unsuspended", dto.EventRecruiterResume
		}
	}

	if err := a.audit.Record(&domain.AuditLog{
		ActorID:  adminID,
		Action:   action,
		Entity:   "recruiter_profile",
		EntityID: recruiterID,
	}); err != nil {
		log.Printf("audit recruiter %d error: %v", recruiterID, err)
	}

	publishEvent(a.producer, event, dto.RecruiterEvent{RecruiterID: recruiterID, AdminID: adminID})

	return profile, nil
}

