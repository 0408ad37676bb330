package repository

import (
	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(app *domain.Application) error
	FindByID(appID uint) (*domain.Application, error)
	ListByStudent(studentID uint) ([]domain.Application, error)
	ListByRecruiter(recruiterID uint, listingID uint) ([]domain.Application, error)
	UpdateStatus(appID uint, status domain.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create relies on uidx_applications_listing_student; a second submission for
// the same (listing, student) pair comes back as a unique violation.
func (a *applicationRepository) Create(app *domain.Application) error {
	return a.db.Create(app).Error
}

func (a *applicationRepository) FindByID(appID uint) (*domain.Application, error) {
	var app domain.Application
	if err := a.db.First(&app, appID).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *applicationRepository) ListByStudent(studentID uint) ([]domain.Application, error) {
	var apps []domain.Application
	err := a.db.Where("student_id = ?", studentID).Order("applied_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByRecruiter joins through listings so a recruiter only ever sees
// applications against postings they own. listingID 0 means all listings.
func (a *applicationRepository) ListByRecruiter(recruiterID uint, listingID uint) ([]domain.Application, error) {
	q := a.db.Model(&domain.Application{}).
		Joins("JOIN listings ON listings.id = applications.listing_id").
		Where("listings.recruiter_id = ?", recruiterID)

	if listingID != 0 {
		q = q.Where("applications.listing_id = ?", listingID)
	}

	var apps []domain.Application
	if err := q.Order("applications.applied_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *applicationRepository) UpdateStatus(appID uint, status domain.ApplicationStatus) error {
	return a.db.Model(&domain.Application{}).
		Where("id = ?", appID).
		Update("status", status).Error
}
