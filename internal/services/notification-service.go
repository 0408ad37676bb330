package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/repository"
)

type NotificationService interface {
	// HandleMessage consumes a broker event and materializes a notification
	// row for the affected user. Satisfies interfaces.ConsumerHandler.
	HandleMessage(message string) error

	ListOwn(userID uint, limit, offset int) ([]domain.Notification, error)
	MarkRead(userID uint, notificationID uint) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (n *notificationService) HandleMessage(message string) error {
	var envelope EventEnvelope
	if err := json.Unmarshal([]byte(message), &envelope); err != nil {
		log.Printf("notification: malformed event: %v", err)
		return nil // poison message, do not retry
	}

	switch envelope.Event {
	case dto.EventApplicationStatus:
		var ev dto.ApplicationEvent
		if err := json.Unmarshal(envelope.Data, &ev); err != nil {
			return err
		}
		return n.repo.Create(&domain.Notification{
			UserID:  ev.StudentID,
			Kind:    envelope.Event,
			Message: fmt.Sprintf("Your application #%d was moved to %s", ev.ApplicationID, ev.Status),
		})

	case dto.EventRecruiterApproved, dto.EventRecruiterRevoked,
		dto.EventRecruiterSuspend, dto.EventRecruiterResume:
		var ev dto.RecruiterEvent
		if err := json.Unmarshal(envelope.Data, &ev); err != nil {
			return err
		}
		return n.repo.Create(&domain.Notification{
			UserID:  ev.RecruiterID,
			Kind:    envelope.Event,
			Message: recruiterEventMessage(envelope.Event),
		})
	}

	// verify_email / reset_password / application.created are handled by the
	// mail pipeline, not the in-app feed
	return nil
}

func recruiterEventMessage(event string) string {
	switch event {
	case dto.EventRecruiterApproved:
		return "Your company account has been verified"
	case dto.EventRecruiterRevoked:
		return "Your company verification has been revoked"
	case dto.EventRecruiterSuspend:
		return "Your company account has been suspended"
	default:
		return "Your company account has been reactivated"
	}
}

func (n *notificationService) ListOwn(userID uint, limit, offset int) ([]domain.Notification, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return n.repo.ListByUser(userID, limit, offset)
}

func (n *notificationService) MarkRead(userID uint, notificationID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}

	affected, err := n.repo.MarkRead(userID, notificationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: notification", ErrNotFound)
	}
	return nil
}
