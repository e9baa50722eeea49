package attendance

import (
	"context"
	"errors"
	"time"

	"studiodesk/internal/domain"
	"studiodesk/internal/scope"

	"gorm.io/gorm"
)

type Service struct {
	records AttendanceRepository

	now func() time.Time
}

func NewService(records AttendanceRepository) *Service {
	return &Service{records: records, now: time.Now}
}

// ClockIn opens today's record for the actor. At most one open record per
// user per day: a second clock-in without a clock-out is rejected.
func (s *Service) ClockIn(ctx context.Context, actor *domain.Actor, req ClockInRequest) (*domain.Attendance, error) {
	departmentID := actor.FirstDepartment()
	if departmentID == 0 {
		return nil, ErrNoDepartment
	}

	now := s.now().UTC()
	today := midnightUTC(now)

	if _, err := s.records.FindOpen(ctx, actor.ID, today); err == nil {
		return nil, ErrAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := &domain.Attendance{
		UserID:       actor.ID,
		DepartmentID: departmentID,
		Date:         today,
		ClockIn:      now,
		Notes:        req.Notes,
	}
	if err := s.records.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ClockOut(ctx context.Context, actor *domain.Actor) (*domain.Attendance, error) {
	now := s.now().UTC()
	today := midnightUTC(now)

	open, err := s.records.FindOpen(ctx, actor.ID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenRecord
		}
		return nil, err
	}

	if err := s.records.SetClockOut(ctx, open.ID, now); err != nil {
		return nil, err
	}
	open.ClockOut = &now
	return open, nil
}

// List returns records in [from, to], defaulting to the current month.
func (s *Service) List(ctx context.Context, actor *domain.Actor, req ListAttendanceRequest) ([]AttendanceEntry, error) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if req.From != "" {
		parsed, err := time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, ErrValidation
		}
		from = parsed
	}
	if req.To != "" {
		parsed, err := time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, ErrValidation
		}
		to = parsed
	}
	if to.Before(from) {
		return nil, ErrValidation
	}

	records, err := s.records.List(ctx, from, to, scope.Attendance(actor))
	if err != nil {
		return nil, err
	}
	return toEntries(records), nil
}
