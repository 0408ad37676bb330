package repository

import (
	"time"

	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type RecruiterProfileRepository interface {
	Upsert(profile *domain.RecruiterProfile) error
	FindByUserID(userID uint) (*domain.RecruiterProfile, error)
	ListAll() ([]domain.RecruiterProfile, error)

	SetVerified(userID uint, verified bool, adminID uint) error
	SetAccountStatus(userID uint, status string, adminID uint) error
}

type recruiterProfileRepository struct {
	db *gorm.DB
}

func NewRecruiterProfileRepository(db *gorm.DB) RecruiterProfileRepository {
	return &recruiterProfileRepository{db: db}
}

func (r *recruiterProfileRepository) Upsert(profile *domain.RecruiterProfile) error {
	return r.db.Where("user_id = ?", profile.UserID).Assign(map[string]any{
		"company_name":  profile.CompanyName,
		"contact_name":  profile.ContactName,
		"contact_email": profile.ContactEmail,
		"website":       profile.Website,
		"description":   profile.Description,
		"logo_url":      profile.LogoURL,
	}).FirstOrCreate(profile).Error
}

func (r *recruiterProfileRepository) FindByUserID(userID uint) (*domain.RecruiterProfile, error) {
	var profile domain.RecruiterProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *recruiterProfileRepository) ListAll() ([]domain.RecruiterProfile, error) {
	var profiles []domain.RecruiterProfile
	if err := r.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// SetVerified is idempotent: re-applying the current value succeeds with no
// row-count check. verified_at only moves when granting.
func (r *recruiterProfileRepository) SetVerified(userID uint, verified bool, adminID uint) error {
	updates := map[string]any{
		"is_verified": verified,
		"reviewed_by": adminID,
	}
	if verified {
		updates["verified_at"] = time.Now()
	}

	return r.db.Model(&domain.RecruiterProfile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

// SetAccountStatus mirrors the suspension onto users.status in the same
// transaction so login gating and the public catalog filter agree.
func (r *recruiterProfileRepository) SetAccountStatus(userID uint, status string, adminID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.RecruiterProfile{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"account_status": status,
				"reviewed_by":    adminID,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&domain.User{}).
			Where("id = ?", userID).
			Update("status", status).Error
	})
}
