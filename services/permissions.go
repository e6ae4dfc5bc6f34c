package services

import (
	"gin-storefront/apperrors"
	"gin-storefront/models"
)

// HasPermission succeeds when the user's permission set intersects the
// required tags. It performs no I/O; callers run it before any write so a
// failed check aborts the whole operation.
func HasPermission(user *models.User, required ...string) error {
	for _, have := range user.Permissions {
		for _, want := range required {
			if have == want {
				return nil
			}
		}
	}
	return apperrors.ErrUnauthorized
}
