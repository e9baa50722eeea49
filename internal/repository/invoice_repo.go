package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	InvoiceNumber string          `gorm:"column:invoice_number;uniqueIndex:idx_invoices_number"`
	ClientID      int64           `gorm:"column:client_id;index"`
	ProjectID     *int64          `gorm:"column:project_id"`
	BookingID     *int64          `gorm:"column:booking_id"`
	DepartmentID  int64           `gorm:"column:department_id;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	Tax           decimal.Decimal `gorm:"column:tax;type:numeric(12,2)"`
	Total         decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
	Status        string          `gorm:"column:status"`
	IssuedAt      time.Time       `gorm:"column:issued_at"`
	DueAt         *time.Time      `gorm:"column:due_at"`
	CreatedBy     *int64          `gorm:"column:created_by"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (invoiceModel) TableName() string { return "invoices" }

func toDomainInvoice(m invoiceModel) *domain.Invoice {
	return &domain.Invoice{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
		BookingID:     m.BookingID,
		DepartmentID:  m.DepartmentID,
		Amount:        m.Amount,
		Tax:           m.Tax,
		Total:         m.Total,
		Status:        domain.InvoiceStatus(m.Status),
		IssuedAt:      m.IssuedAt,
		DueAt:         m.DueAt,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toInvoiceModel(inv *domain.Invoice) invoiceModel {
	return invoiceModel{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
		BookingID:     inv.BookingID,
		DepartmentID:  inv.DepartmentID,
		Amount:        inv.Amount,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        string(inv.Status),
		IssuedAt:      inv.IssuedAt,
		DueAt:         inv.DueAt,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	m := toInvoiceModel(inv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*inv = *toDomainInvoice(m)
	return nil
}

func (r *InvoiceRepository) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Invoice, error) {
	var m invoiceModel
	tx := r.db.WithContext(ctx).Scopes(sc).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInvoice(m), nil
}

func (r *InvoiceRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Invoice, error) {
	var ms []invoiceModel
	if err := r.db.WithContext(ctx).Scopes(sc).Order("id desc").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Invoice, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainInvoice(m))
	}
	return out, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&invoiceModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
