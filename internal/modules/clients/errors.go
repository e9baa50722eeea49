package clients

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrEmailTaken = errors.New("client email already registered")
	ErrNotFound   = errors.New("client not found")
)
