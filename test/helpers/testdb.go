package helpers

import (
	"testing"

	"gorm.io/gorm"

	"campus_backend/internal/auth"
	"campus_backend/internal/models"
)

// CreateEvent inserts an event directly, bypassing the API.
func CreateEvent(t *testing.T, db *gorm.DB, title string, maxAttendees int, status, createdBy string) *models.Event {
	event := &models.Event{
		Title:        title,
		MaxAttendees: maxAttendees,
		Status:       status,
		CreatedBy:    createdBy,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event
}

// CreateStudent inserts a student with a hashed password.
func CreateStudent(t *testing.T, db *gorm.DB, email, password string, status models.AccountStatus) *models.Student {
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	student := &models.Student{
		Name:         "Test Student",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		Status:       status,
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return student
}

// CreatePrAdmin inserts a PR admin with a hashed password.
func CreatePrAdmin(t *testing.T, db *gorm.DB, email, password string) *models.PrAdmin {
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	admin := &models.PrAdmin{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RolePrAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("Failed to create test pr admin: %v", err)
	}
	return admin
}

// CreateNotification inserts a notification directly.
func CreateNotification(t *testing.T, db *gorm.DB, userEmail, title string) *models.Notification {
	notification := &models.Notification{
		UserEmail: userEmail,
		Title:     title,
		Message:   "test message",
		Type:      models.NotificationTypeInfo,
	}
	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("Failed to create test notification: %v", err)
	}
	return notification
}
