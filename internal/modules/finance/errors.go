package finance

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrUnknownClient     = errors.New("client not found")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
	ErrNotFound          = errors.New("invoice not found")
)
