package admin

import (
	"context"

	"studiodesk/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type DepartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, d *domain.Department) error
}

type IPBlockStore interface {
	Block(ctx context.Context, ip, reason string) error
	Unblock(ctx context.Context, ip string) error
}
