package catalog

import (
	"context"

	"studiodesk/internal/domain"
)

type StudioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
	List(ctx context.Context) ([]domain.Studio, error)
	Create(ctx context.Context, s *domain.Studio) error
	Update(ctx context.Context, s *domain.Studio) error
	SetActive(ctx context.Context, id int64, active bool) error
}
