package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

type expenseModel struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	DepartmentID int64           `gorm:"column:department_id;index"`
	Category     string          `gorm:"column:category"`
	Description  *string         `gorm:"column:description"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	IncurredAt   time.Time       `gorm:"column:incurred_at"`
	CreatedBy    *int64          `gorm:"column:created_by"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (expenseModel) TableName() string { return "expenses" }

func toDomainExpense(m expenseModel) *domain.Expense {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Expense{
		ID:           m.ID,
		DepartmentID: m.DepartmentID,
		Category:     m.Category,
		Description:  description,
		Amount:       m.Amount,
		IncurredAt:   m.IncurredAt,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	m := expenseModel{
		DepartmentID: e.DepartmentID,
		Category:     e.Category,
		Amount:       e.Amount,
		IncurredAt:   e.IncurredAt,
		CreatedBy:    e.CreatedBy,
	}
	if e.Description != "" {
		v := e.Description
		m.Description = &v
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*e = *toDomainExpense(m)
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Expense, error) {
	var ms []expenseModel
	if err := r.db.WithContext(ctx).Scopes(sc).Order("incurred_at desc").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Expense, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainExpense(m))
	}
	return out, nil
}
