package models

import (
	"gorm.io/datatypes"
)

// Event is a schedulable activity with a capacity-bounded attendee list.
// The attendee count is never stored; it is always the cardinality of
// Registrations (see Attendees).
type Event struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	Date         datatypes.Date
	Time         string
	Location     string
	Category     string
	MaxAttendees int `gorm:"not null;default:0;check:max_attendees >= 0"`
	Priority     string
	Status       string `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedBy    string

	Registrations []EventRegistration `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// EventRegistration maps an event to one registered user email.
// The composite primary key gives set semantics: a user registers
// at most once per event.
type EventRegistration struct {
	EventID   uint   `gorm:"primaryKey;autoIncrement:false"`
	UserEmail string `gorm:"primaryKey;size:255"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}

// Attendees is the derived attendee count. Callers must load Registrations
// before reading it.
func (e *Event) Attendees() int {
	return len(e.Registrations)
}

// IsRegistered reports whether email is a member of the registered set.
func (e *Event) IsRegistered(email string) bool {
	for _, r := range e.Registrations {
		if r.UserEmail == email {
			return true
		}
	}
	return false
}
