package clients

import (
	"context"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}
