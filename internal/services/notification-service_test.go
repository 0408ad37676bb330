package services

import (
	"encoding/json"
	"testing"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	nextID uint
	rows   []*domain.Notification
}

func (r *fakeNotificationRepo) Create(n *domain.Notification) error {
	r.nextID++
	n.ID = r.nextID
	r.rows = append(r.rows, n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(userID uint, limit, offset int) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.rows {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(userID uint, notificationID uint) (int64, error) {
	for _, n := range r.rows {
		if n.ID == notificationID && n.UserID == userID {
			n.Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func envelope(t *testing.T, event string, payload any) string {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	value, err := json.Marshal(EventEnvelope{Event: event, Data: data})
	require.NoError(t, err)
	return string(value)
}

func TestHandleMessage_ApplicationStatusNotifiesStudent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	msg := envelope(t, dto.EventApplicationStatus, dto.ApplicationEvent{
		ApplicationID: 12,
		ListingID:     3,
		StudentID:     7,
		Status:        "shortlisted",
	})

	require.NoError(t, svc.HandleMessage(msg))
	require.Len(t, repo.rows, 1)
	assert.Equal(t, uint(7), repo.rows[0].UserID)
	assert.Equal(t, dto.EventApplicationStatus, repo.rows[0].Kind)
	assert.Contains(t, repo.rows[0].Message, "shortlisted")
}

func TestHandleMessage_ModerationNotifiesRecruiter(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	msg := envelope(t, dto.EventRecruiterSuspend, dto.RecruiterEvent{RecruiterID: 5, AdminID: 1})

	require.NoError(t, svc.HandleMessage(msg))
	require.Len(t, repo.rows, 1)
	assert.Equal(t, uint(5), repo.rows[0].UserID)
	assert.Contains(t, repo.rows[0].Message, "suspended")
}

func TestHandleMessage_MailEventsIgnored(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	msg := envelope(t, dto.EventVerifyEmail, dto.VerifyEmailEvent{UserID: 7, Email: "a@b.c"})

	require.NoError(t, svc.HandleMessage(msg))
	assert.Empty(t, repo.rows)
}

func TestHandleMessage_MalformedDropped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	// poison messages must not surface an error, or the consumer would loop
	require.NoError(t, svc.HandleMessage("not json at all"))
	assert.Empty(t, repo.rows)
}

func TestMarkRead_OwnerScoped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	require.NoError(t, repo.Create(&domain.Notification{UserID: 7, Kind: "x", Message: "m"}))
	id := repo.rows[0].ID

	// another user cannot read it away
	err := svc.MarkRead(8, id)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.MarkRead(7, id))
	assert.True(t, repo.rows[0].Read)
}

func TestListOwn_ClampsLimit(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	require.NoError(t, repo.Create(&domain.Notification{UserID: 7, Kind: "x", Message: "m"}))

	rows, err := svc.ListOwn(7, -5, -10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
