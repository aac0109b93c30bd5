package models

// Event and announcement lifecycle. Status only ever moves draft -> published.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// AccountStatus tracks the approval state of a student account.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "PENDING"
	AccountStatusApproved AccountStatus = "APPROVED"
	AccountStatusRejected AccountStatus = "REJECTED"
)

// Roles
const (
	RoleStudent   = "student"
	RolePrAdmin   = "pr_admin"
	RoleMainAdmin = "main_admin"
)

// Notification category tags rendered by the client.
const (
	NotificationTypeSuccess = "success"
	NotificationTypeError   = "error"
	NotificationTypeInfo    = "info"
)
