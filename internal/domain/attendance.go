package domain

import "time"

type Attendance struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	DepartmentID int64      `json:"department_id"`
	Date         time.Time  `json:"date"`
	ClockIn      time.Time  `json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WorkedHours returns 0 while the record is still open.
func (a *Attendance) WorkedHours() float64 {
	if a.ClockOut == nil {
		return 0
	}
	return a.ClockOut.Sub(a.ClockIn).Hours()
}
