package repository

import (
	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type StudentProfileRepository interface {
	Upsert(profile *domain.StudentProfile) error
	FindByUserID(userID uint) (*domain.StudentProfile, error)
}

type studentProfileRepository struct {
	db *gorm.DB
}

func NewStudentProfileRepository(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (s *studentProfileRepository) Upsert(profile *domain.StudentProfile) error {
	return s.db.Where("user_id = ?", profile.UserID).Assign(profile).FirstOrCreate(profile).Error
}

func (s *studentProfileRepository) FindByUserID(userID uint) (*domain.StudentProfile, error) {
	var profile domain.StudentProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
