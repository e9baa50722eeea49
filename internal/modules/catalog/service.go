package catalog

import (
	"context"
	"errors"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	studios StudioRepository
}

func NewService(studios StudioRepository) *Service {
	return &Service{studios: studios}
}

// ListActive is the public directory: inactive studios are hidden.
func (s *Service) ListActive(ctx context.Context) ([]domain.Studio, error) {
	all, err := s.studios.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Studio, 0, len(all))
	for _, studio := range all {
		if studio.IsActive {
			out = append(out, studio)
		}
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Studio, error) {
	return s.studios.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Studio, error) {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return studio, nil
}

func (s *Service) Create(ctx context.Context, req CreateStudioRequest) (*domain.Studio, error) {
	studioType := domain.StudioType(req.Type)
	switch studioType {
	case domain.StudioRecording, domain.StudioPhotography, domain.StudioOutside:
	default:
		return nil, ErrValidation
	}
	if req.PromoRate != nil && *req.PromoRate < 0 {
		return nil, ErrValidation
	}

	studio := &domain.Studio{
		Name:       req.Name,
		Type:       studioType,
		HourlyRate: req.HourlyRate,
		PromoRate:  req.PromoRate,
		Pricing:    req.Pricing,
		Capacity:   req.Capacity,
		Features:   req.Features,
		IsActive:   true,
	}
	if err := s.studios.Create(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

// Update merges the provided fields. The studio type is fixed at creation:
// availability windows hang off it, so changing it would reinterpret every
// existing booking.
func (s *Service) Update(ctx context.Context, id int64, req UpdateStudioRequest) (*domain.Studio, error) {
	studio, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		studio.Name = *req.Name
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			return nil, ErrValidation
		}
		studio.HourlyRate = *req.HourlyRate
	}
	if req.PromoRate != nil {
		if *req.PromoRate < 0 {
			return nil, ErrValidation
		}
		studio.PromoRate = req.PromoRate
	}
	if req.Pricing != nil {
		studio.Pricing = *req.Pricing
	}
	if req.Capacity != nil {
		studio.Capacity = *req.Capacity
	}
	if req.Features != nil {
		studio.Features = req.Features
	}
	if req.IsActive != nil {
		studio.IsActive = *req.IsActive
	}

	if err := s.studios.Update(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.studios.SetActive(ctx, id, false)
}
