package dto

import "time"

// ---------------- Requests ----------------

type CreateRegistrationRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	RollNo    string `json:"rollNo" validate:"omitempty,max=50"`
	Email     string `json:"email" validate:"required,email"`
	EventID   string `json:"eventId" validate:"omitempty,max=50"`
	EventName string `json:"eventName" validate:"omitempty,max=200"`
}

// ---------------- Responses ----------------

type RegistrationResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	RollNo           string    `json:"rollNo"`
	Email            string    `json:"email"`
	EventID          string    `json:"eventId"`
	EventName        string    `json:"eventName"`
	RegistrationDate time.Time `json:"registrationDate"`
}
