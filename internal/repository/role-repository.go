package repository

import (
	"errors"

	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByCode(code string) (*domain.Role, error)
	GetRoleCodeByUserID(userID uint) (string, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByCode(code string) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.Where("code = ?", code).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetRoleCodeByUserID(userID uint) (string, error) {
	var roleCode string

	err := r.db.
		Table("user_roles").
		Select("roles.code").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Limit(1).
		Scan(&roleCode).Error

	if err != nil {
		return "", err
	}
	if roleCode == "" {
		return "", errors.New("role not found for user")
	}
	return roleCode, nil
}
