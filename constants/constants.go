package constants

// Permission tags carried on a user's permission set.
const (
	PermissionUser       = "USER"
	PermissionAdmin      = "ADMIN"
	PermissionUpdate     = "PERMISSIONUPDATE"
	PermissionDeleteItem = "DELETEITEM"
)

// Fixed response messages.
const (
	MsgSignout        = "Goodbye! Thanks for shopping with us."
	MsgResetRequested = "Thanks! Check your email for a reset link."
)

// Error messages surfaced by controllers for non-domain failures.
const (
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidInput = "Invalid input"
)
