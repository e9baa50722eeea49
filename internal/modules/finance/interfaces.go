package finance

import (
	"context"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Invoice, error)
	List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Expense, error)
}

type ClientReader interface {
	GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Client, error)
}
