package projects

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrUnknownClient = errors.New("client not found")
	ErrNotFound      = errors.New("project not found")
)
