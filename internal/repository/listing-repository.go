package repository

import (
	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(listing *domain.Listing) error
	FindByID(listingID uint) (*domain.Listing, error)
	ListOpen(requireVerified bool, limit, offset int) ([]domain.Listing, error)
	ListByRecruiter(recruiterID uint) ([]domain.Listing, error)
	Save(listing *domain.Listing) error
	Delete(listingID uint) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (l *listingRepository) Create(listing *domain.Listing) error {
	return l.db.Create(listing).Error
}

func (l *listingRepository) FindByID(listingID uint) (*domain.Listing, error) {
	var listing domain.Listing
	if err := l.db.First(&listing, listingID).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListOpen is the public catalog. With requireVerified on, only listings whose
// owner is a verified, active recruiter are returned.
func (l *listingRepository) ListOpen(requireVerified bool, limit, offset int) ([]domain.Listing, error) {
	q := l.db.Model(&domain.Listing{}).
		Where("listings.status = ?", domain.ListingStatusOpen)

	if requireVerified {
		q = q.Joins("JOIN recruiter_profiles ON recruiter_profiles.user_id = listings.recruiter_id").
			Where("recruiter_profiles.is_verified = ? AND recruiter_profiles.account_status = ?",
				true, domain.RecruiterAccountActive)
	}

	var listings []domain.Listing
	err := q.Order("listings.created_at DESC").Limit(limit).Offset(offset).Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (l *listingRepository) ListByRecruiter(recruiterID uint) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := l.db.Where("recruiter_id = ?", recruiterID).Order("created_at DESC").Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (l *listingRepository) Save(listing *domain.Listing) error {
	return l.db.Save(listing).Error
}

func (l *listingRepository) Delete(listingID uint) error {
	return l.db.Delete(&domain.Listing{}, listingID).Error
}
