package services

import (
	"fmt"
	"time"

	"campus_backend/internal/logger"
	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type EventService interface {
	CreateEvent(req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetAllEvents() ([]*dto.EventResponse, error)
	GetPublishedEvents() ([]*dto.EventResponse, error)
	PublishEvent(id uint) (*dto.EventResponse, error)
	RegisterForEvent(id uint, userEmail string) error
	UnregisterFromEvent(id uint, userEmail string) error
	DeleteEvent(id uint) error
}

type eventService struct {
	eventRepo        repositories.EventRepository
	notificationRepo repositories.NotificationRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	notificationRepo repositories.NotificationRepository,
) EventService {
	return &eventService{
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *eventService) CreateEvent(req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Time:         req.Time,
		Location:     req.Location,
		Category:     req.Category,
		MaxAttendees: req.MaxAttendees,
		Priority:     req.Priority,
		Status:       models.StatusDraft,
		CreatedBy:    req.CreatedBy,
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date format. Use YYYY-MM-DD")
		}
		event.Date = datatypes.Date(date)
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildEventResponse(event), nil
}

func (s *eventService) GetAllEvents() ([]*dto.EventResponse, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildEventResponses(events), nil
}

func (s *eventService) GetPublishedEvents() ([]*dto.EventResponse, error) {
	events, err := s.eventRepo.FindByStatus(models.StatusPublished)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildEventResponses(events), nil
}

// PublishEvent sets the event status to published, unconditionally: the
// transition is repeatable and never reversed. The status write and the
// owner notification are two independent best-effort effects; a failure to
// enqueue the notification does not undo the publish.
func (s *eventService) PublishEvent(id uint) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	event.Status = models.StatusPublished

	var notifErr error
	if event.CreatedBy != "" {
		notifErr = s.notificationRepo.Create(&models.Notification{
			UserEmail: event.CreatedBy,
			Title:     "Event Published!",
			Message:   fmt.Sprintf("Your event \"%s\" has been published and is now live.", event.Title),
			Type:      models.NotificationTypeSuccess,
		})
	}

	if err := s.eventRepo.Save(event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if notifErr != nil {
		logger.Warn("Failed to create publish notification",
			"event_id", event.ID, "error", notifErr)
	}

	return buildEventResponse(event), nil
}

// RegisterForEvent adds userEmail to the event's registered set. The capacity
// check and the insert run as one atomic unit per event inside the repository.
func (s *eventService) RegisterForEvent(id uint, userEmail string) error {
	err := s.eventRepo.AddRegistration(id, userEmail)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrEventNotFound):
			return apperrors.ErrEventNotFound
		case apperrors.Is(err, repositories.ErrEventFull):
			return apperrors.ErrEventFull
		default:
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// UnregisterFromEvent is idempotent. A missing event is a silent no-op, the
// same forgiving contract the removal of an absent member has.
func (s *eventService) UnregisterFromEvent(id uint, userEmail string) error {
	if err := s.eventRepo.RemoveRegistration(id, userEmail); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *eventService) DeleteEvent(id uint) error {
	if err := s.eventRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Helpers ----------------

func buildEventResponse(event *models.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Date:         formatDate(event.Date),
		Time:         event.Time,
		Location:     event.Location,
		Category:     event.Category,
		MaxAttendees: event.MaxAttendees,
		Priority:     event.Priority,
		Status:       event.Status,
		CreatedBy:    event.CreatedBy,
		Attendees:    event.Attendees(),
	}
}

func buildEventResponses(events []models.Event) []*dto.EventResponse {
	responses := make([]*dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, buildEventResponse(&events[i]))
	}
	return responses
}

func formatDate(date datatypes.Date) string {
	t := time.Time(date)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
