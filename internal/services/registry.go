package services

import (
	"campus_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	EventService        EventService
	NotificationService NotificationService
	AuthService         AuthService
	AdminService        AdminService
	AnnouncementService AnnouncementService
	RegistrationService RegistrationService
	EmailProvider       email.Provider
}
