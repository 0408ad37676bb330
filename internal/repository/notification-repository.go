package repository

import (
	"github.com/InternHub/internhub-backend/internal/domain"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(n *domain.Notification) error
	ListByUser(userID uint, limit, offset int) ([]domain.Notification, error)
	MarkRead(userID uint, notificationID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) Create(notification *domain.Notification) error {
	return n.db.Create(notification).Error
}

func (n *notificationRepository) ListByUser(userID uint, limit, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := n.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead scopes the update to the owner; rows affected 0 means the row does
// not exist or belongs to someone else.
func (n *notificationRepository) MarkRead(userID uint, notificationID uint) (int64, error) {
	res := n.db.Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}
