package admin

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUnknownRole   = errors.New("unknown role")
	ErrNotFound      = errors.New("record not found")
)
