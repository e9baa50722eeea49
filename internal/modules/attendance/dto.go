package attendance

import (
	"time"

	"studiodesk/internal/domain"
)

type ClockInRequest struct {
	Notes string `json:"notes"`
}

type ListAttendanceRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type AttendanceEntry struct {
	domain.Attendance
	WorkedHours float64 `json:"worked_hours"`
}

func toEntries(records []domain.Attendance) []AttendanceEntry {
	out := make([]AttendanceEntry, 0, len(records))
	for _, r := range records {
		out = append(out, AttendanceEntry{Attendance: r, WorkedHours: r.WorkedHours()})
	}
	return out
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
