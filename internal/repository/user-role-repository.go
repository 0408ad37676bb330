package repository

import (
	"errors"

	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type UserRoleRepository interface {
	AssignRole(userID uint, roleID uint) error
	GetRolesByUserID(userID uint) ([]domain.Role, error)
	UserHasRole(userID uint, roleCode string) (bool, error)
}

type userRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) UserRoleRepository {
	return &userRoleRepository{db: db}
}

// AssignRole links exactly one role to the user. Roles are fixed at signup,
// so an existing link is never replaced.
func (ur *userRoleRepository) AssignRole(userID uint, roleID uint) error {
	if userID == 0 || roleID == 0 {
		return errors.New("invalid user_id or role_id")
	}

	link := &domain.UserRole{UserID: userID, RoleID: roleID}
	return ur.db.Where("user_id = ?", userID).FirstOrCreate(link).Error
}

func (ur *userRoleRepository) GetRolesByUserID(userID uint) ([]domain.Role, error) {
	var roles []domain.Role
	err := ur.db.
		Model(&domain.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (ur *userRoleRepository) UserHasRole(userID uint, roleCode string) (bool, error) {
	var count int64
	err := ur.db.
		Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.code = ?", userID, roleCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
