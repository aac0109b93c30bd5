package models

import (
	"time"
)

// StudentRegistration is a standalone sign-up record filed by a student for
// an event, independent of the event's capacity-bounded membership set.
type StudentRegistration struct {
	ID               uint `gorm:"primaryKey"`
	Name             string
	RollNo           string
	Email            string
	EventID          string
	EventName        string
	RegistrationDate time.Time `gorm:"autoCreateTime"`
}
