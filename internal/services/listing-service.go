package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/repository"
	"gorm.io/gorm"
)

type ListingService interface {
	Browse(limit, offset int) ([]domain.Listing, error)
	Get(listingID uint) (*domain.Listing, error)
	ListOwn(recruiterID uint) ([]domain.Listing, error)
	Create(recruiterID uint, input dto.ListingInput) (*domain.Listing, error)
	Update(recruiterID uint, listingID uint, patch dto.ListingPatch) (*domain.Listing, error)
	Delete(recruiterID uint, listingID uint) error
}

type listingService struct {
	repo repository.ListingRepository

	// when set, Browse hides listings of unverified or suspended recruiters
	requireVerified bool
}

func NewListingService(repo repository.ListingRepository, requireVerified bool) ListingService {
	return &listingService{repo: repo, requireVerified: requireVerified}
}

func (l *listingService) Browse(limit, offset int) ([]domain.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return l.repo.ListOpen(l.requireVerified, limit, offset)
}

func (l *listingService) Get(listingID uint) (*domain.Listing, error) {
	listing, err := l.repo.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return nil, err
	}
	return listing, nil
}

func (l *listingService) ListOwn(recruiterID uint) ([]domain.Listing, error) {
	if recruiterID == 0 {
		return nil, ErrUnauthorized
	}
	return l.repo.ListByRecruiter(recruiterID)
}

func (l *listingService) Create(recruiterID uint, input dto.ListingInput) (*domain.Listing, error) {
	if recruiterID == 0 {
		return nil, ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	listing := &domain.Listing{
		RecruiterID:    recruiterID,
		Title:          title,
		Description:    description,
		Duration:       strings.TrimSpace(input.Duration),
		Stipend:        strings.TrimSpace(input.Stipend),
		Location:       strings.TrimSpace(input.Location),
		RequiredSkills: input.RequiredSkills,
		Eligibility:    strings.TrimSpace(input.Eligibility),
		Deadline:       input.Deadline,
		Status:         domain.ListingStatusOpen,
	}

	if err := l.repo.Create(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (l *listingService) Update(recruiterID uint, listingID uint, patch dto.ListingPatch) (*domain.Listing, error) {
	listing, err := l.ownedListing(recruiterID, listingID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		listing.Title = t
	}
	if patch.Description != nil {
		d := strings.TrimSpace(*patch.Description)
		if d == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrValidation)
		}
		listing.Description = d
	}
	if patch.Duration != nil {
		listing.Duration = strings.TrimSpace(*patch.Duration)
	}
	if patch.Stipend != nil {
		listing.Stipend = strings.TrimSpace(*patch.Stipend)
	}
	if patch.Location != nil {
		listing.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.RequiredSkills != nil {
		listing.RequiredSkills = *patch.RequiredSkills
	}
	if patch.Eligibility != nil {
		listing.Eligibility = strings.TrimSpace(*patch.Eligibility)
	}
	if patch.Deadline != nil {
		listing.Deadline = patch.Deadline
	}
	if patch.Status != nil {
		status := strings.TrimSpace(strings.ToLower(*patch.Status))
		if status != domain.ListingStatusOpen && status != domain.ListingStatusClosed {
			return nil, fmt.Errorf("%w: status must be open or closed", ErrValidation)
		}
		listing.Status = status
	}

	if err := l.repo.Save(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (l *listingService) Delete(recruiterID uint, listingID uint) error {
	if _, err := l.ownedListing(recruiterID, listingID); err != nil {
		return err
	}
	return l.repo.Delete(listingID)
}

func (l *listingService) ownedListing(recruiterID uint, listingID uint) (*domain.Listing, error) {
	if recruiterID == 0 {
		return nil, ErrUnauthorized
	}

	listing, err := l.repo.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return nil, err
	}
	if listing.RecruiterID != recruiterID {
		return nil, fmt.Errorf("%w: listing belongs to another recruiter", ErrForbidden)
	}
	return listing, nil
}
