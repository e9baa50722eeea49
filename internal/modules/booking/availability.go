package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studiodesk/internal/registry"

	"gorm.io/gorm"
)

// AvailableSlots computes every candidate slot in the operating window of the
// studio serving the requested service type. A slot is unavailable when its
// start has already elapsed or when it overlaps a non-cancelled booking;
// touching endpoints do not conflict. Pure read, no side effects.
func (s *Service) AvailableSlots(ctx context.Context, req AvailableSlotsRequest) (*AvailableSlotsResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	entry, ok := registry.Lookup(registry.ServiceType(req.ServiceType))
	if !ok {
		return nil, ErrInvalidServiceType
	}

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

	existing, err := s.bookings.ListForStudioDate(ctx, studio.ID, day)
	if err != nil {
		return nil, err
	}

	now := s.now()
	// A duration wider than the window yields an empty list, not an error.
	slots := make([]Slot, 0)
	availableCount := 0
	for hour := entry.OpenHour; hour+duration <= entry.CloseHour; hour++ {
		start := day.Add(time.Duration(hour) * time.Hour)
		end := start.Add(time.Duration(duration) * time.Hour)

		available := !start.Before(now)
		if available {
			for i := range existing {
				if existing[i].Overlaps(start, end) {
					available = false
					break
				}
			}
		}
		if available {
			availableCount++
		}

		slots = append(slots, Slot{
			Start:     start,
			End:       end,
			Display:   fmt.Sprintf("%02d:00 - %02d:00", hour, hour+duration),
			Available: available,
		})
	}

	return &AvailableSlotsResponse{
		Date:           req.Date,
		ServiceType:    req.ServiceType,
		Duration:       duration,
		Slots:          slots,
		AvailableCount: availableCount,
	}, nil
}

// firstFreeSlot picks the earliest available slot for a public request that
// arrived without a start time.
func (s *Service) firstFreeSlot(ctx context.Context, studioID int64, entry registry.Entry, day time.Time, duration int) (time.Time, error) {
	existing, err := s.bookings.ListForStudioDate(ctx, studioID, day)
	if err != nil {
		return time.Time{}, err
	}

	now := s.now()
	for hour := entry.OpenHour; hour+duration <= entry.CloseHour; hour++ {
		start := day.Add(time.Duration(hour) * time.Hour)
		end := start.Add(time.Duration(duration) * time.Hour)

		if start.Before(now) {
			continue
		}
		free := true
		for i := range existing {
			if existing[i].Overlaps(start, end) {
				free = false
				break
			}
		}
		if free {
			return start, nil
		}
	}
	return time.Time{}, ErrSlotTaken
}
