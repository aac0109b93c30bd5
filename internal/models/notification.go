package models

import (
	"time"
)

// Notification is a per-user, append-only message record.
// CreatedAt is set once at insert time and never mutated; only the
// read flag ever changes afterwards.
type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserEmail string    `gorm:"not null;index:idx_notifications_user_created,priority:1"`
	Title     string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	Type      string    `gorm:"not null"` // "success", "error", "info"
	IsRead    bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2"`
}
