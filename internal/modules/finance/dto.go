package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	ClientID     int64           `json:"client_id" binding:"required"`
	ProjectID    *int64          `json:"project_id"`
	BookingID    *int64          `json:"booking_id"`
	DepartmentID *int64          `json:"department_id"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	DueAt        *time.Time      `json:"due_at"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateExpenseRequest struct {
	DepartmentID *int64          `json:"department_id"`
	Category     string          `json:"category" binding:"required"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	IncurredAt   *time.Time      `json:"incurred_at"`
}
