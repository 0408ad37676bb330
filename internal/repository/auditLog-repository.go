package repository

import (
	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Record(entry *domain.AuditLog) error
	ListByEntity(entity string, entityID uint) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (a *auditLogRepository) Record(entry *domain.AuditLog) error {
	return a.db.Create(entry).Error
}

func (a *auditLogRepository) ListByEntity(entity string, entityID uint) ([]domain.AuditLog, error) {
	var entries []domain.AuditLog
	err := a.db.Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
