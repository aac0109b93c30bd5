package dto

// ---------------- Requests ----------------

type CreateEventRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"omitempty,max=5000"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         string `json:"time" validate:"omitempty,max=20"`
	Location     string `json:"location" validate:"omitempty,max=200"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	MaxAttendees int    `json:"maxAttendees" validate:"min=0"`
	Priority     string `json:"priority" validate:"omitempty,max=20"`
	CreatedBy    string `json:"createdBy" validate:"omitempty,email"`
}

type EventRegistrationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ---------------- Responses ----------------

// EventResponse is the wire representation of an event. The raw membership
// set is not exposed; only the derived attendees count is.
type EventResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	MaxAttendees int    `json:"maxAttendees"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	CreatedBy    string `json:"createdBy"`
	Attendees    int    `json:"attendees"`
}
