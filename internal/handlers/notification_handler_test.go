package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_backend/internal/services/dto"
	"campus_backend/internal/validator"
	"campus_backend/pkg/apperrors"
)

type stubNotificationService struct {
	byUser      map[string][]*dto.NotificationResponse
	markReadErr error

	clearedFor []string
	deletedIDs []uint
}

func (s *stubNotificationService) CreateNotification(userEmail, title, message, notificationType string) error {
	return nil
}

func (s *stubNotificationService) GetNotificationsForUser(userEmail string) ([]*dto.NotificationResponse, error) {
	notifications := s.byUser[userEmail]
	if notifications == nil {
		notifications = []*dto.NotificationResponse{}
	}
	return notifications, nil
}

func (s *stubNotificationService) MarkAsRead(id uint) (*dto.NotificationResponse, error) {
	if s.markReadErr != nil {
		return nil, s.markReadErr
	}
	return &dto.NotificationResponse{ID: id, IsRead: true}, nil
}

func (s *stubNotificationService) MarkAllAsRead(userEmail string) ([]*dto.NotificationResponse, error) {
	var updated []*dto.NotificationResponse
	for _, n := range s.byUser[userEmail] {
		n.IsRead = true
		updated = append(updated, n)
	}
	return updated, nil
}

func (s *stubNotificationService) DeleteNotification(id uint) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubNotificationService) DeleteAllForUser(userEmail string) error {
	s.clearedFor = append(s.clearedFor, userEmail)
	return nil
}

func (s *stubNotificationService) UnreadCount(userEmail string) (int64, error) {
	var count int64
	for _, n := range s.byUser[userEmail] {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func newNotificationTestRouter(svc *stubNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	base := NewBaseHandler(validator.New())
	handler := NewNotificationHandler(base, svc)
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetUserNotifications(t *testing.T) {
	now := time.Now()
	svc := &stubNotificationService{byUser: map[string][]*dto.NotificationResponse{
		"u@campus.edu": {
			{ID: 2, UserEmail: "u@campus.edu", Title: "second", Timestamp: now.Add(time.Minute)},
			{ID: 1, UserEmail: "u@campus.edu", Title: "first", Timestamp: now},
		},
	}}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "GET", "/api/notifications/u@campus.edu")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "second", resp[0]["title"])
	assert.Equal(t, "u@campus.edu", resp[0]["userEmail"])
	assert.Equal(t, false, resp[0]["read"])
	assert.Contains(t, resp[0], "timestamp")
}

func TestGetUserNotifications_EmptyList(t *testing.T) {
	svc := &stubNotificationService{byUser: map[string][]*dto.NotificationResponse{}}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "GET", "/api/notifications/nobody@campus.edu")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestMarkAsReadEndpoint(t *testing.T) {
	svc := &stubNotificationService{}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "PUT", "/api/notifications/5/read")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(5), resp["id"])
	assert.Equal(t, true, resp["read"])
}

func TestMarkAsReadEndpoint_NotFound(t *testing.T) {
	svc := &stubNotificationService{markReadErr: apperrors.ErrNotificationNotFound}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "PUT", "/api/notifications/42/read")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllAsReadEndpoint(t *testing.T) {
	svc := &stubNotificationService{byUser: map[string][]*dto.NotificationResponse{
		"u@campus.edu": {
			{ID: 1, UserEmail: "u@campus.edu"},
			{ID: 2, UserEmail: "u@campus.edu"},
		},
	}}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "PUT", "/api/notifications/read-all/u@campus.edu")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, n := range resp {
		assert.Equal(t, true, n["read"])
	}
}

func TestDeleteNotificationEndpoint(t *testing.T) {
	svc := &stubNotificationService{}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "DELETE", "/api/notifications/7")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{7}, svc.deletedIDs)
}

func TestClearAllEndpoint(t *testing.T) {
	svc := &stubNotificationService{}
	router := newNotificationTestRouter(svc)

	w := do(t, router, "DELETE", "/api/notifications/clear-all/u@campus.edu")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"u@campus.edu"}, svc.clearedFor)
}
