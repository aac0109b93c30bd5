package dto

import "time"

// NotificationResponse is the wire representation of a notification.
type NotificationResponse struct {
	ID        uint      `json:"id"`
	UserEmail string    `json:"userEmail"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
