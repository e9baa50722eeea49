package projects

import (
	"context"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Project, error)
	List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
}

type ClientReader interface {
	GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Client, error)
}
