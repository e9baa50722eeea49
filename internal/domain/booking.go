package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCancelled  BookingStatus = "cancelled"
)

// CanTransitionTo encodes the booking status machine:
// pending -> confirmed -> in_progress, cancellation allowed from any
// non-terminal state, nothing leaves cancelled or in_progress.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingInProgress || next == BookingCancelled
	default:
		return false
	}
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id"`
	BookingNumber string        `json:"booking_number"`
	StudioID      int64         `json:"studio_id"`
	ProjectID     *int64        `json:"project_id,omitempty"`
	ClientID      *int64        `json:"client_id,omitempty"`
	DepartmentID  int64         `json:"department_id"`
	Date          time.Time     `json:"date"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        BookingStatus `json:"status"`
	Purpose       string        `json:"purpose,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	TotalCost     float64       `json:"total_cost"`
	CreatedBy     *int64        `json:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
}

// Overlaps reports half-open interval overlap with [start, end). Touching
// endpoints do not conflict.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// BookingEvent is pushed to the schedule feed on ledger mutations.
type BookingEvent struct {
	Type          string        `json:"type"` // created | status_changed | cancelled | rescheduled
	BookingID     int64         `json:"booking_id"`
	BookingNumber string        `json:"booking_number"`
	StudioID      int64         `json:"studio_id"`
	Status        BookingStatus `json:"status"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
}
