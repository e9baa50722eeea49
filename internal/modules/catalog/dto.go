package catalog

import "studiodesk/internal/domain"

type CreateStudioRequest struct {
	Name       string                  `json:"name" binding:"required"`
	Type       string                  `json:"type" binding:"required"`
	HourlyRate float64                 `json:"hourly_rate" binding:"required,gt=0"`
	PromoRate  *float64                `json:"promo_rate"`
	Pricing    domain.PricingStructure `json:"pricing"`
	Capacity   int                     `json:"capacity"`
	Features   []string                `json:"features"`
}

type UpdateStudioRequest struct {
	Name       *string                  `json:"name"`
	HourlyRate *float64                 `json:"hourly_rate"`
	PromoRate  *float64                 `json:"promo_rate"`
	Pricing    *domain.PricingStructure `json:"pricing"`
	Capacity   *int                     `json:"capacity"`
	Features   []string                 `json:"features"`
	IsActive   *bool                    `json:"is_active"`
}
