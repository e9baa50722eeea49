package domain

import "time"

type StudioType string

const (
	StudioRecording   StudioType = "recording"
	StudioPhotography StudioType = "photography"
	StudioOutside     StudioType = "outside"
)

// PricingStructure carries the non-hourly rate options of a studio. Any field
// left nil means the option is not offered.
type PricingStructure struct {
	HalfDayRate *float64 `json:"half_day_rate,omitempty"`
	FullDayRate *float64 `json:"full_day_rate,omitempty"`
	CustomRate  *float64 `json:"custom_rate,omitempty"`
}

type Studio struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Type       StudioType       `json:"type"`
	HourlyRate float64          `json:"hourly_rate"`
	PromoRate  *float64         `json:"promo_rate,omitempty"`
	Pricing    PricingStructure `json:"pricing"`
	Capacity   int              `json:"capacity"`
	Features   []string         `json:"features,omitempty"`
	IsActive   bool             `json:"is_active"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// EffectiveHourlyRate is the rate used for booking cost computation. An
// active promo rate replaces the base hourly rate at creation time; the
// chosen rate is captured in the booking's total cost and never recomputed.
func (s *Studio) EffectiveHourlyRate() float64 {
	if s.PromoRate != nil && *s.PromoRate > 0 {
		return *s.PromoRate
	}
	return s.HourlyRate
}
