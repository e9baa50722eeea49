package booking

import "time"

type AvailableSlotsRequest struct {
	Date        string `form:"date" binding:"required"`
	ServiceType string `form:"service_type" binding:"required"`
	Duration    int    `form:"duration"`
}

type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Display   string    `json:"display"`
	Available bool      `json:"available"`
}

type AvailableSlotsResponse struct {
	Date           string `json:"date"`
	ServiceType    string `json:"service_type"`
	Duration       int    `json:"duration"`
	Slots          []Slot `json:"slots"`
	AvailableCount int    `json:"available_count"`
}

type CreateBookingRequest struct {
	StudioID     int64     `json:"studio_id" binding:"required"`
	ProjectID    *int64    `json:"project_id"`
	ClientID     *int64    `json:"client_id"`
	DepartmentID *int64    `json:"department_id"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Purpose      string    `json:"purpose"`
	Notes        string    `json:"notes"`
}

type PublicBookingRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	EventType   string `json:"event_type"`
	Date        string `json:"date" binding:"required" validate:"datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"omitempty,datetime=15:04"` // first free slot when empty
	Duration    int    `json:"duration" validate:"min=0,max=24"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone"`
}

// UpdateBookingRequest merges coalesce-style: nil fields keep their previous
// value.
type UpdateBookingRequest struct {
	StudioID     *int64     `json:"studio_id"`
	ProjectID    *int64     `json:"project_id"`
	ClientID     *int64     `json:"client_id"`
	DepartmentID *int64     `json:"department_id"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Purpose      *string    `json:"purpose"`
	Notes        *string    `json:"notes"`
	Status       *string    `json:"status"`
}

type ListBookingsRequest struct {
	Start    string `form:"start"`
	End      string `form:"end"`
	StudioID *int64 `form:"studio_id"`
}
