package apperrors

import "errors"

// One sentinel per failure class. Services return these (optionally wrapped)
// and controllers translate them with errors.Is, so every failure path is an
// explicit value rather than a stringly-typed message.
var (
	ErrUnauthenticated       = errors.New("you must be logged in to do that")
	ErrUnauthorized          = errors.New("you don't have permission to do that")
	ErrNotFound              = errors.New("record not found")
	ErrValidation            = errors.New("invalid input")
	ErrInvalidCredential     = errors.New("invalid password")
	ErrInvalidOrExpiredToken = errors.New("this token is either invalid or expired")
	ErrPaymentFailed         = errors.New("payment failed")
)
