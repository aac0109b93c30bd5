package services

import (
	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"
)

type NotificationService interface {
	CreateNotification(userEmail, title, message, notificationType string) error
	GetNotificationsForUser(userEmail string) ([]*dto.NotificationResponse, error)
	MarkAsRead(id uint) (*dto.NotificationResponse, error)
	MarkAllAsRead(userEmail string) ([]*dto.NotificationResponse, error)
	DeleteNotification(id uint) error
	DeleteAllForUser(userEmail string) error
	UnreadCount(userEmail string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// CreateNotification appends one record to the user's message log. The read
// flag starts false and the timestamp is fixed at insert time.
func (s *notificationService) CreateNotification(userEmail, title, message, notificationType string) error {
	notification := &models.Notification{
		UserEmail: userEmail,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		IsRead:    false,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetNotificationsForUser returns a snapshot of the user's notifications,
// newest first.
func (s *notificationService) GetNotificationsForUser(userEmail string) ([]*dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByUserEmail(userEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildNotificationResponses(notifications), nil
}

func (s *notificationService) MarkAsRead(id uint) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.MarkAsRead(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(userEmail string) ([]*dto.NotificationResponse, error) {
	updated, err := s.notificationRepo.MarkAllAsRead(userEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildNotificationResponses(updated), nil
}

func (s *notificationService) DeleteNotification(id uint) error {
	if err := s.notificationRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) DeleteAllForUser(userEmail string) error {
	if err := s.notificationRepo.DeleteByUserEmail(userEmail); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userEmail string) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userEmail)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

// ---------------- Helpers ----------------

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        notification.ID,
		UserEmail: notification.UserEmail,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		Timestamp: notification.CreatedAt,
	}
}

func buildNotificationResponses(notifications []models.Notification) []*dto.NotificationResponse {
	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return responses
}
