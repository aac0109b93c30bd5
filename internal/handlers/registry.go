package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	EventHandler        *EventHandler
	NotificationHandler *NotificationHandler
	AuthHandler         *AuthHandler
	AdminHandler        *AdminHandler
	AnnouncementHandler *AnnouncementHandler
	RegistrationHandler *RegistrationHandler
}
