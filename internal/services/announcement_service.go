package services

import (
	"time"

	"gorm.io/datatypes"

	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"
)

type AnnouncementService interface {
	CreateAnnouncement(req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	GetAllAnnouncements() ([]*dto.AnnouncementResponse, error)
	GetPublishedAnnouncements() ([]*dto.AnnouncementResponse, error)
	PublishAnnouncement(id uint) (*dto.AnnouncementResponse, error)
	DeleteAnnouncement(id uint) error
}

type announcementService struct {
	announcementRepo repositories.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

func (s *announcementService) CreateAnnouncement(req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	announcement := &models.Announcement{
		Title:          req.Title,
		Content:        req.Content,
		Priority:       req.Priority,
		Status:         models.StatusDraft,
		TargetAudience: req.TargetAudience,
		CreatedAt:      datatypes.Date(time.Now()),
	}

	if err := s.announcementRepo.Create(announcement); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildAnnouncementResponse(announcement), nil
}

func (s *announcementService) GetAllAnnouncements() ([]*dto.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAnnouncementResponses(announcements), nil
}

func (s *announcementService) GetPublishedAnnouncements() ([]*dto.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.FindByStatus(models.StatusPublished)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAnnouncementResponses(announcements), nil
}

// PublishAnnouncement marks the announcement published and stamps the
// publication date. Publishing an already published announcement refreshes
// the stamp.
func (s *announcementService) PublishAnnouncement(id uint) (*dto.AnnouncementResponse, error) {
	announcement, err := s.announcementRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAnnouncementNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	announcement.Status = models.StatusPublished
	announcement.PublishedAt = datatypes.Date(time.Now())

	if err := s.announcementRepo.Save(announcement); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildAnnouncementResponse(announcement), nil
}

func (s *announcementService) DeleteAnnouncement(id uint) error {
	if _, err := s.announcementRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrAnnouncementNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.announcementRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildAnnouncementResponse(announcement *models.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:             announcement.ID,
		Title:          announcement.Title,
		Content:        announcement.Content,
		Priority:       announcement.Priority,
		Status:         announcement.Status,
		TargetAudience: announcement.TargetAudience,
		CreatedAt:      formatDate(announcement.CreatedAt),
		PublishedAt:    formatDate(announcement.PublishedAt),
	}
}

func buildAnnouncementResponses(announcements []models.Announcement) []*dto.AnnouncementResponse {
	responses := make([]*dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, buildAnnouncementResponse(&announcements[i]))
	}
	return responses
}
