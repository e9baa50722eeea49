package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type StudioRepository struct {
	db *gorm.DB
}

func NewStudioRepository(db *gorm.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

type studioModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Type        string    `gorm:"column:type;index"`
	HourlyRate  float64   `gorm:"column:hourly_rate"`
	PromoRate   *float64  `gorm:"column:promo_rate"`
	HalfDayRate *float64  `gorm:"column:half_day_rate"`
	FullDayRate *float64  `gorm:"column:full_day_rate"`
	CustomRate  *float64  `gorm:"column:custom_rate"`
	Capacity    int       `gorm:"column:capacity"`
	Features    []string  `gorm:"column:features;serializer:json"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (studioModel) TableName() string { return "studios" }

func toDomainStudio(m studioModel) *domain.Studio {
	return &domain.Studio{
		ID:         m.ID,
		Name:       m.Name,
		Type:       domain.StudioType(m.Type),
		HourlyRate: m.HourlyRate,
		PromoRate:  m.PromoRate,
		Pricing: domain.PricingStructure{
			HalfDayRate: m.HalfDayRate,
			FullDayRate: m.FullDayRate,
			CustomRate:  m.CustomRate,
		},
		Capacity:  m.Capacity,
		Features:  m.Features,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toStudioModel(s *domain.Studio) studioModel {
	return studioModel{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		HourlyRate:  s.HourlyRate,
		PromoRate:   s.PromoRate,
		HalfDayRate: s.Pricing.HalfDayRate,
		FullDayRate: s.Pricing.FullDayRate,
		CustomRate:  s.Pricing.CustomRate,
		Capacity:    s.Capacity,
		Features:    s.Features,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *StudioRepository) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	var m studioModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainStudio(m), nil
}

// FindActiveByType resolves the bookable studio serving a studio type.
func (r *StudioRepository) FindActiveByType(ctx context.Context, t domain.StudioType) (*domain.Studio, error) {
	var m studioModel
	tx := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", string(t), true).
		Order("id").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainStudio(m), nil
}

func (r *StudioRepository) List(ctx context.Context) ([]domain.Studio, error) {
	var ms []studioModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Studio, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainStudio(m))
	}
	return out, nil
}

func (r *StudioRepository) Create(ctx context.Context, s *domain.Studio) error {
	m := toStudioModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStudio(m)
	return nil
}

func (r *StudioRepository) Update(ctx context.Context, s *domain.Studio) error {
	m := toStudioModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStudio(m)
	return nil
}

// SetActive toggles the soft status; studios are never deleted.
func (r *StudioRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&studioModel{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
