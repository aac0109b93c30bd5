package repositories

import (
	"errors"

	"campus_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id uint) (*models.Notification, error)
	FindByUserEmail(userEmail string) ([]models.Notification, error)
	MarkAsRead(id uint) (*models.Notification, error)
	MarkAllAsRead(userEmail string) ([]models.Notification, error)
	Delete(id uint) error
	DeleteByUserEmail(userEmail string) error
	UnreadCount(userEmail string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindByUserEmail returns a snapshot of the user's notifications, newest first.
func (r *NotificationRepositoryImpl) FindByUserEmail(userEmail string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead flips the read flag and returns the updated record. Marking an
// already-read notification is a no-op that still returns the current state.
func (r *NotificationRepositoryImpl) MarkAsRead(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&notification, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotificationNotFound
			}
			return err
		}
		if notification.IsRead {
			return nil
		}
		notification.IsRead = true
		return tx.Model(&notification).Update("is_read", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkAllAsRead flips every unread notification of the user inside one
// transaction, so a concurrent insert is either wholly included or wholly
// excluded from the returned batch.
func (r *NotificationRepositoryImpl) MarkAllAsRead(userEmail string) ([]models.Notification, error) {
	var unread []models.Notification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ? AND is_read = ?", userEmail, false).
			Order("created_at DESC").
			Find(&unread).Error; err != nil {
			return err
		}
		if len(unread) == 0 {
			return nil
		}

		ids := make([]uint, len(unread))
		for i := range unread {
			ids[i] = unread[i].ID
			unread[i].IsRead = true
		}

		return tx.Model(&models.Notification{}).
			Where("id IN ?", ids).
			Update("is_read", true).Error
	})
	if err != nil {
		return nil, err
	}
	return unread, nil
}

// Delete removes a notification; deleting a non-existent id is a no-op.
func (r *NotificationRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Notification{}, id).Error
}

func (r *NotificationRepositoryImpl) DeleteByUserEmail(userEmail string) error {
	return r.db.Where("user_email = ?", userEmail).
		Delete(&models.Notification{}).Error
}

func (r *NotificationRepositoryImpl) UnreadCount(userEmail string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_email = ? AND is_read = ?", userEmail, false).
		Count(&count).Error
	return count, err
}
