package repositories

import (
	"errors"

	"campus_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	FindByID(id uint) (*models.Announcement, error)
	FindAll() ([]models.Announcement, error)
	FindByStatus(status string) ([]models.Announcement, error)
	Save(announcement *models.Announcement) error
	Delete(id uint) error
}

type AnnouncementRepositoryImpl struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &AnnouncementRepositoryImpl{db: db}
}

func (r *AnnouncementRepositoryImpl) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

func (r *AnnouncementRepositoryImpl) FindByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

func (r *AnnouncementRepositoryImpl) FindAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("id").Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepositoryImpl) FindByStatus(status string) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Where("status = ?", status).Order("id").Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepositoryImpl) Save(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

func (r *AnnouncementRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
