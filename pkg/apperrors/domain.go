package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository "record not found" into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Events ---

// ErrEventNotFound - the referenced event id does not exist.
var ErrEventNotFound = New(
	CodeNotFound,
	"event",
	"Event not found",
	http.StatusNotFound,
)

// ErrEventFull - registration attempted against an event at capacity.
// No mutation is performed; the caller sees a plain 400.
var ErrEventFull = New(
	CodeCapacityExceeded,
	"event",
	"Registration failed",
	http.StatusBadRequest,
)

// --- Notifications ---

// ErrNotificationNotFound - the referenced notification id does not exist.
var ErrNotificationNotFound = New(
	CodeNotFound,
	"notification",
	"Notification not found",
	http.StatusNotFound,
)

// --- Announcements ---

var ErrAnnouncementNotFound = New(
	CodeNotFound,
	"announcement",
	"Announcement not found",
	http.StatusNotFound,
)

// --- Auth & Accounts ---

// ErrEmailInUse - the email already belongs to a student or a PR admin.
var ErrEmailInUse = New(
	CodeAlreadyExists,
	"auth",
	"Email is already in use.",
	http.StatusConflict,
)

// ErrInvalidCredentials - wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials.",
	http.StatusUnauthorized,
)

// ErrAccountNotApproved - password checked out but the account is still pending.
var ErrAccountNotApproved = New(
	CodeForbidden,
	"auth",
	"Your account has not been approved yet.",
	http.StatusForbidden,
)

// ErrStudentNotFound - the referenced student id does not exist.
var ErrStudentNotFound = New(
	CodeNotFound,
	"admin",
	"Student not found",
	http.StatusNotFound,
)

// ErrPrAdminNotFound - the referenced PR admin id does not exist.
var ErrPrAdminNotFound = New(
	CodeNotFound,
	"admin",
	"PR Admin not found",
	http.StatusNotFound,
)
