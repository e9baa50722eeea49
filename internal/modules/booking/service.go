package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"studiodesk/internal/domain"
	"studiodesk/internal/registry"
	"studiodesk/internal/scope"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	studios  StudioRepository
	events   EventSink

	now func() time.Time
}

func NewService(bookings BookingRepository, studios StudioRepository, events EventSink) *Service {
	return &Service{
		bookings: bookings,
		studios:  studios,
		events:   events,
		now:      time.Now,
	}
}

// Create inserts a confirmed internal booking. The conflict check runs before
// the insert; the store's exclusion constraint backs it up against concurrent
// writers, so a racing create surfaces as the same conflict error.
func (s *Service) Create(ctx context.Context, actor *domain.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()
	if err := validateTimeRange(start, end); err != nil {
		return nil, err
	}

	studio, err := s.studios.GetByID(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudioUnavailable
		}
		return nil, err
	}
	if !studio.IsActive {
		return nil, ErrStudioUnavailable
	}

	departmentID := resolveDepartment(req.DepartmentID, actor, studio.Type)
	date := midnightUTC(start)

	conflict, err := s.bookings.HasOverlap(ctx, studio.ID, date, start, end, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	createdBy := actor.ID
	b := &domain.Booking{
		BookingNumber: newBookingNumber(start),
		StudioID:      studio.ID,
		ProjectID:     req.ProjectID,
		ClientID:      req.ClientID,
		DepartmentID:  departmentID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.BookingConfirmed,
		Purpose:       req.Purpose,
		Notes:         req.Notes,
		TotalCost:     bookingCost(studio, start, end),
		CreatedBy:     &createdBy,
	}

	if err := s.insertWithRetry(ctx, b, func() error {
		return s.bookings.Create(ctx, b)
	}); err != nil {
		return nil, err
	}

	s.publish("created", b)
	return b, nil
}

// CreatePublic handles the unauthenticated booking flow: resolve the studio
// from the service type, reuse or create the client by email, insert a
// pending booking awaiting staff review. Client and booking land atomically.
func (s *Service) CreatePublic(ctx context.Context, req PublicBookingRequest) (*domain.Booking, error) {
	entry, ok := registry.Lookup(registry.ServiceType(req.ServiceType))
	if !ok {
		return nil, ErrInvalidServiceType
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	day = midnightUTC(day)

	duration := req.Duration
	if duration == 0 {
		duration = 1
	}
	if duration < 0 {
		return nil, ErrValidation
	}

	studio, err := s.studios.FindActiveByType(ctx, entry.StudioType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudioUnavailable
		}
		return nil, err
	}

	var start time.Time
	if req.StartTime != "" {
		at, err := time.Parse("15:04", req.StartTime)
		if err != nil {
			return nil, ErrValidation
		}
		// Slots sit on the hour grid. A half-past start would slip its end
		// past the closing hour even when the start hour reads in-window.
		if at.Minute() != 0 {
			return nil, ErrValidation
		}
		if at.Hour() < entry.OpenHour || at.Hour()+duration > entry.CloseHour {
			return nil, ErrValidation
		}
		start = day.Add(time.Duration(at.Hour()) * time.Hour)
	} else {
		start, err = s.firstFreeSlot(ctx, studio.ID, entry, day, duration)
		if err != nil {
			return nil, err
		}
	}
	end := start.Add(time.Duration(duration) * time.Hour)

	conflict, err := s.bookings.HasOverlap(ctx, studio.ID, day, start, end, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	notes := req.Notes
	if req.Location != "" {
		if notes != "" {
			notes = "Location: " + req.Location + "\n" + notes
		} else {
			notes = "Location: " + req.Location
		}
	}

	client := &domain.Client{
		Name:         req.ClientName,
		Email:        req.ClientEmail,
		Phone:        req.ClientPhone,
		DepartmentID: entry.DefaultDepartmentID,
		IsActive:     true,
	}
	b := &domain.Booking{
		BookingNumber: newBookingNumber(start),
		StudioID:      studio.ID,
		DepartmentID:  entry.DefaultDepartmentID,
		Date:          day,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.BookingPending,
		Purpose:       req.EventType,
		Notes:         notes,
		TotalCost:     bookingCost(studio, start, end),
	}

	if err := s.insertWithRetry(ctx, b, func() error {
		return s.bookings.CreateWithClient(ctx, client, b)
	}); err != nil {
		return nil, err
	}

	s.publish("created", b)
	return b, nil
}

// Update reschedules and/or transitions a booking. Only the creator or an
// admin may mutate; unspecified fields keep their previous value.
func (s *Service) Update(ctx context.Context, actor *domain.Actor, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.getForMutation(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	timingChanged := req.StudioID != nil || req.StartTime != nil || req.EndTime != nil
	statusOnly := req.Status != nil && !timingChanged &&
		req.ProjectID == nil && req.ClientID == nil && req.DepartmentID == nil &&
		req.Purpose == nil && req.Notes == nil &&
		domain.BookingStatus(*req.Status) != domain.BookingCancelled

	if req.StudioID != nil {
		b.StudioID = *req.StudioID
	}
	if req.ProjectID != nil {
		b.ProjectID = req.ProjectID
	}
	if req.ClientID != nil {
		b.ClientID = req.ClientID
	}
	if req.DepartmentID != nil {
		b.DepartmentID = *req.DepartmentID
	}
	if req.StartTime != nil {
		b.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		b.EndTime = req.EndTime.UTC()
	}
	if req.Purpose != nil {
		b.Purpose = *req.Purpose
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		if !next.Valid() {
			return nil, ErrValidation
		}
		if next != b.Status {
			if !b.Status.CanTransitionTo(next) {
				return nil, ErrInvalidTransition
			}
			b.Status = next
			if next == domain.BookingCancelled {
				at := s.now()
				b.CancelledAt = &at
			}
		}
	}

	// A pure status change needs no overlap or cost work; write the single
	// column. Cancellation goes through the full path so cancelled_at lands.
	if statusOnly {
		if err := s.bookings.UpdateStatus(ctx, id, b.Status); err != nil {
			return nil, err
		}
		s.publish("status_changed", b)
		return b, nil
	}

	if timingChanged {
		if err := validateTimeRange(b.StartTime, b.EndTime); err != nil {
			return nil, err
		}
		b.Date = midnightUTC(b.StartTime)

		conflict, err := s.bookings.HasOverlap(ctx, b.StudioID, b.Date, b.StartTime, b.EndTime, b.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrSlotTaken
		}

		studio, err := s.studios.GetByID(ctx, b.StudioID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudioUnavailable
			}
			return nil, err
		}
		if !studio.IsActive {
			return nil, ErrStudioUnavailable
		}
		b.TotalCost = bookingCost(studio, b.StartTime, b.EndTime)
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapConstraintError(err)
	}

	s.publish("rescheduled", b)
	return b, nil
}

// Cancel flips the booking to cancelled; the row is kept and permanently
// excluded from future conflict checks. Cancelling a cancelled or in-progress
// booking fails cleanly with an invalid-transition error.
func (s *Service) Cancel(ctx context.Context, actor *domain.Actor, id int64) (*domain.Booking, error) {
	b, err := s.getForMutation(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(domain.BookingCancelled) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.Cancel(ctx, id, s.now()); err != nil {
		return nil, err
	}

	b, err = s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish("cancelled", b)
	return b, nil
}

// Delete is the admin-only hard removal.
func (s *Service) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.bookings.Delete(ctx, id)
}

// Get reads one booking through the actor's scope. A booking the actor may
// not see answers not-found, never forbidden, so the endpoint does not reveal
// which IDs exist.
func (s *Service) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetScoped(ctx, id, scope.Bookings(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List returns the scoped calendar for [start, end]; defaults to a 31-day
// window from today when bounds are absent.
func (s *Service) List(ctx context.Context, actor *domain.Actor, req ListBookingsRequest) ([]domain.Booking, error) {
	from := midnightUTC(s.now())
	if req.Start != "" {
		d, err := time.Parse("2006-01-02", req.Start)
		if err != nil {
			return nil, ErrValidation
		}
		from = midnightUTC(d)
	}

	to := from.AddDate(0, 0, 31)
	if req.End != "" {
		d, err := time.Parse("2006-01-02", req.End)
		if err != nil {
			return nil, ErrValidation
		}
		to = midnightUTC(d)
	}
	if to.Before(from) {
		return nil, ErrValidation
	}

	return s.bookings.List(ctx, from, to, req.StudioID, scope.Bookings(actor))
}

func (s *Service) getForMutation(ctx context.Context, actor *domain.Actor, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canMutate(actor, b) {
		return nil, ErrForbidden
	}
	return b, nil
}

func canMutate(actor *domain.Actor, b *domain.Booking) bool {
	if actor.IsAdmin() {
		return true
	}
	return b.CreatedBy != nil && *b.CreatedBy == actor.ID
}

// insertWithRetry maps constraint violations to domain errors and retries a
// booking-number collision once with a fresh suffix.
func (s *Service) insertWithRetry(ctx context.Context, b *domain.Booking, create func() error) error {
	err := create()
	if err == nil {
		return nil
	}
	if isNumberCollision(err) {
		b.BookingNumber = newBookingNumber(b.StartTime)
		if err = create(); err == nil {
			return nil
		}
	}
	return mapConstraintError(err)
}

func isNumberCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_bookings_number"
}

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "bookings_no_overlap" {
		return ErrSlotTaken
	}
	return err
}

func validateTimeRange(start, end time.Time) error {
	if !end.After(start) {
		return ErrValidation
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return ErrCrossDay
	}
	return nil
}

func resolveDepartment(requested *int64, actor *domain.Actor, studioType domain.StudioType) int64 {
	if requested != nil && *requested > 0 {
		return *requested
	}
	if d := actor.FirstDepartment(); d > 0 {
		return d
	}
	return registry.DefaultDepartment(studioType)
}

func bookingCost(studio *domain.Studio, start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	total := hours * studio.EffectiveHourlyRate()
	return math.Round(total*100) / 100
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) publish(eventType string, b *domain.Booking) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		StudioID:      b.StudioID,
		Status:        b.Status,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
	})
}
