package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_backend/internal/models"
	"campus_backend/pkg/apperrors"
)

func seedNotification(t *testing.T, repo *fakeNotificationRepo, userEmail, title string, createdAt time.Time) uint {
	t.Helper()
	n := &models.Notification{
		UserEmail: userEmail,
		Title:     title,
		Message:   "m",
		Type:      models.NotificationTypeInfo,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(n))
	return n.ID
}

func TestGetNotificationsForUser_NewestFirst(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	// Insertion order is deliberately not chronological; ordering must
	// follow the timestamps.
	base := time.Now()
	seedNotification(t, repo, "u@campus.edu", "second", base.Add(time.Minute))
	seedNotification(t, repo, "u@campus.edu", "first", base)
	seedNotification(t, repo, "u@campus.edu", "third", base.Add(2*time.Minute))
	seedNotification(t, repo, "other@campus.edu", "noise", base.Add(3*time.Minute))

	notifications, err := svc.GetNotificationsForUser("u@campus.edu")
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "third", notifications[0].Title)
	assert.Equal(t, "second", notifications[1].Title)
	assert.Equal(t, "first", notifications[2].Title)
}

func TestMarkAsRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	id := seedNotification(t, repo, "u@campus.edu", "hello", time.Now())

	updated, err := svc.MarkAsRead(id)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	// Marking again keeps it read.
	updated, err = svc.MarkAsRead(id)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo())

	_, err := svc.MarkAsRead(42)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotificationNotFound))
}

func TestMarkAllAsRead_LeavesNoUnread(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	base := time.Now()
	seedNotification(t, repo, "u@campus.edu", "a", base)
	seedNotification(t, repo, "u@campus.edu", "b", base.Add(time.Minute))
	otherID := seedNotification(t, repo, "other@campus.edu", "c", base)

	updated, err := svc.MarkAllAsRead("u@campus.edu")
	require.NoError(t, err)
	assert.Len(t, updated, 2)
	for _, n := range updated {
		assert.True(t, n.IsRead)
	}

	count, err := svc.UnreadCount("u@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Other users' notifications are untouched.
	other, err := repo.FindByID(otherID)
	require.NoError(t, err)
	assert.False(t, other.IsRead)
}

func TestMarkAllAsRead_EmptyLog(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo())

	updated, err := svc.MarkAllAsRead("nobody@campus.edu")
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestDeleteNotification_Idempotent(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	id := seedNotification(t, repo, "u@campus.edu", "a", time.Now())

	require.NoError(t, svc.DeleteNotification(id))
	require.NoError(t, svc.DeleteNotification(id))

	notifications, err := svc.GetNotificationsForUser("u@campus.edu")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestDeleteAllForUser(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	base := time.Now()
	seedNotification(t, repo, "u@campus.edu", "a", base)
	seedNotification(t, repo, "u@campus.edu", "b", base)
	seedNotification(t, repo, "other@campus.edu", "c", base)

	require.NoError(t, svc.DeleteAllForUser("u@campus.edu"))

	mine, err := svc.GetNotificationsForUser("u@campus.edu")
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := svc.GetNotificationsForUser("other@campus.edu")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestCreateNotification_StartsUnread(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	require.NoError(t, svc.CreateNotification("u@campus.edu", "t", "m", models.NotificationTypeInfo))

	count, err := svc.UnreadCount("u@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
