package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/interfaces"
	"github.com/InternHub/internhub-backend/internal/repository"
	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(studentID uint, input dto.ApplyRequest) (*domain.Application, error)
	ListOwn(studentID uint) ([]domain.Application, error)
	ListForRecruiter(recruiterID uint, listingID uint) ([]domain.Application, error)
	UpdateStatus(recruiterID uint, applicationID uint, status string) (*domain.Application, error)
}

type applicationService struct {
	repo     repository.ApplicationRepository
	listings repository.ListingRepository
	users    repository.UserRepository
	audit    repository.AuditLogRepository
	producer interfaces.ProducerHandler
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	listings repository.ListingRepository,
	users repository.UserRepository,
	audit repository.AuditLogRepository,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		repo:     repo,
		listings: listings,
		users:    users,
		audit:    audit,
		producer: producer,
	}
}

func (a *applicationService) Apply(studentID uint, input dto.ApplyRequest) (*domain.Application, error) {
	if studentID == 0 {
		return nil, ErrUnauthorized
	}
	if input.ListingID == 0 {
		return nil, fmt.Errorf("%w: listing_id is required", ErrValidation)
	}
	coverLetter := strings.TrimSpace(input.CoverLetter)
	if coverLetter == "" {
		return nil, fmt.Errorf("%w: cover_letter is required", ErrValidation)
	}

	student, err := a.users.FindUserById(studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: student", ErrNotFound)
	}
	if student.Status != domain.UserStatusActive {
		return nil, fmt.Errorf("%w: account is not active", ErrForbidden)
	}

	listing, err := a.listings.FindByID(input.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return nil, err
	}
	if listing.Status != domain.ListingStatusOpen {
		return nil, fmt.Errorf("%w: listing is closed", ErrValidation)
	}

	app := &domain.Application{
		ListingID:    input.ListingID,
		StudentID:    studentID,
		CoverLetter:  coverLetter,
		PortfolioURL: input.PortfolioURL,
		ResumeURL:    input.ResumeURL,
		Status:       domain.ApplicationStatusApplied,
	}

	// The unique index is the only reliable duplicate guard: two concurrent
	// submissions both pass any pre-check, only one insert commits.
	if err := a.repo.Create(app); err != nil {
		if helper.IsUniqueViolation(err, "uidx_applications_listing_student") {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	publishEvent(a.producer, dto.EventApplicationNew, dto.ApplicationEvent{
		ApplicationID: app.ID,
		ListingID:     app.ListingID,
		StudentID:     app.StudentID,
		Status:        string(app.Status),
	})

	return app, nil
}

func (a *applicationService) ListOwn(studentID uint) ([]domain.Application, error) {
	if studentID == 0 {
		return nil, ErrUnauthorized
	}
	return a.repo.ListByStudent(studentID)
}

func (a *applicationService) ListForRecruiter(recruiterID uint, listingID uint) ([]domain.Application, error) {
	if recruiterID == 0 {
		return nil, ErrUnauthorized
	}

	// when scoped to one listing, check ownership explicitly so a foreign
	// listing id fails loudly instead of returning an empty slice
	if listingID != 0 {
		listing, err := a.listings.FindByID(listingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: listing", ErrNotFound)
			}
			return nil, err
		}
		if listing.RecruiterID != recruiterID {
			return nil, fmt.Errorf("%w: listing belongs to another recruiter", ErrForbidden)
		}
	}

	return a.repo.ListByRecruiter(recruiterID, listingID)
}

// UpdateStatus moves an application to any known status. No ordering is
// enforced between the non-terminal states; a recruiter may go straight from
// applied to offered.
func (a *applicationService) UpdateStatus(recruiterID uint, applicationID uint, status string) (*domain.Application, error) {
	if recruiterID == 0 {
		return nil, ErrUnauthorized
	}

	next := domain.ApplicationStatus(strings.TrimSpace(strings.ToLower(status)))
	if !domain.IsKnownApplicationStatus(next) {
		return nil, fmt.Errorf("%w: status must be applied, shortlisted, interview, offered, or rejected", ErrValidation)
	}

	app, err := a.repo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application", ErrNotFound)
		}
		return nil, err
	}

	listing, err := a.listings.FindByID(app.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.RecruiterID != recruiterID {
		return nil, fmt.Errorf("%w: application belongs to another recruiter", ErrForbidden)
	}

	if err := a.repo.UpdateStatus(applicationID, next); err != nil {
		return nil, err
	}

	prev := app.Status
	app.Status = next

	note := fmt.Sprintf("%s -> %s", prev, next)
	if err := a.audit.Record(&domain.AuditLog{
		ActorID:  recruiterID,
		Action:   "application.status_changed",
		Entity:   "application",
		EntityID: app.ID,
		Note:     &note,
	}); err != nil {
		log.Printf("audit application %d error: %v", app.ID, err)
	}

	publishEvent(a.producer, dto.EventApplicationStatus, dto.ApplicationEvent{
		ApplicationID: app.ID,
		ListingID:     app.ListingID,
		StudentID:     app.StudentID,
		Status:        string(next),
	})

	return app, nil
}

