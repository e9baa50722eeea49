package attendance

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrAlreadyOpen  = errors.New("an open attendance record already exists for today")
	ErrNoOpenRecord = errors.New("no open attendance record to clock out")
	ErrNoDepartment = errors.New("user has no department to record attendance against")
)
