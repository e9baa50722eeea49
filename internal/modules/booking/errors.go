package booking

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrCrossDay           = errors.New("booking may not span midnight")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrStudioUnavailable  = errors.New("studio not available")
	ErrSlotTaken          = errors.New("slot already booked")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("booking not found")
)
