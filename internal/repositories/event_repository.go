package repositories

import (
	"errors"

	"campus_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventFull     = errors.New("event is at capacity")
)

type EventRepository interface {
	Create(event *models.Event) error
	FindByID(id uint) (*models.Event, error)
	FindAll() ([]models.Event, error)
	FindByStatus(status string) ([]models.Event, error)
	Save(event *models.Event) error
	Delete(id uint) error

	// Membership operations
	AddRegistration(eventID uint, userEmail string) error
	RemoveRegistration(eventID uint, userEmail string) error
	CountRegistrations(eventID uint) (int64, error)
}

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepositoryImpl) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Registrations").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("Registrations").Order("id").Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) FindByStatus(status string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("Registrations").Where("status = ?", status).Order("id").Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) Save(event *models.Event) error {
	return r.db.Omit("Registrations").Save(event).Error
}

func (r *EventRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

// AddRegistration runs the capacity check and the membership insert as one
// atomic unit per event. The event row is locked for the duration of the
// transaction so two concurrent registrations cannot both pass the check
// when a single slot is left.
func (r *EventRepositoryImpl) AddRegistration(eventID uint, userEmail string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.EventRegistration{}).
			Where("event_id = ? AND user_email = ?", eventID, userEmail).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			// Set semantics: re-registering a member is a no-op, not an error.
			return nil
		}

		var count int64
		if err := tx.Model(&models.EventRegistration{}).
			Where("event_id = ?", eventID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(event.MaxAttendees) {
			return ErrEventFull
		}

		return tx.Create(&models.EventRegistration{
			EventID:   eventID,
			UserEmail: userEmail,
		}).Error
	})
}

// RemoveRegistration is idempotent: removing an absent member, or a member of
// an absent event, deletes nothing and reports success.
func (r *EventRepositoryImpl) RemoveRegistration(eventID uint, userEmail string) error {
	return r.db.
		Where("event_id = ? AND user_email = ?", eventID, userEmail).
		Delete(&models.EventRegistration{}).Error
}

func (r *EventRepositoryImpl) CountRegistrations(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
