package finance

import (
	"context"
	"errors"
	"time"

	"studiodesk/internal/domain"
	"studiodesk/internal/scope"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	invoices InvoiceRepository
	expenses ExpenseRepository
	clients  ClientReader

	now func() time.Time
}

func NewService(invoices InvoiceRepository, expenses ExpenseRepository, clients ClientReader) *Service {
	return &Service{invoices: invoices, expenses: expenses, clients: clients, now: time.Now}
}

// CreateInvoice issues a draft invoice for a client the actor can see.
// Tax is derived from the rate at issue time and the figures are frozen on
// the record; later rate changes never touch existing invoices.
func (s *Service) CreateInvoice(ctx context.Context, actor *domain.Actor, req CreateInvoiceRequest) (*domain.Invoice, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, ErrValidation
	}
	if req.TaxRate.IsNegative() {
		return nil, ErrValidation
	}

	client, err := s.clients.GetScoped(ctx, req.ClientID, scope.Clients(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownClient
		}
		return nil, err
	}

	departmentID := client.DepartmentID
	if req.DepartmentID != nil {
		departmentID = *req.DepartmentID
	}
	if err := scope.CheckDepartmentWrite(actor, departmentID); err != nil {
		return nil, err
	}

	amount := req.Amount.Round(2)
	tax := amount.Mul(req.TaxRate).Div(decimal.NewFromInt(100)).Round(2)

	createdBy := actor.ID
	issued := s.now().UTC()
	inv := &domain.Invoice{
		InvoiceNumber: newInvoiceNumber(issued),
		ClientID:      client.ID,
		ProjectID:     req.ProjectID,
		BookingID:     req.BookingID,
		DepartmentID:  departmentID,
		Amount:        amount,
		Tax:           tax,
		Total:         amount.Add(tax),
		Status:        domain.InvoiceDraft,
		IssuedAt:      issued,
		DueAt:         req.DueAt,
		CreatedBy:     &createdBy,
	}

	err = s.invoices.Create(ctx, inv)
	if isNumberCollision(err) {
		inv.InvoiceNumber = newInvoiceNumber(issued)
		err = s.invoices.Create(ctx, inv)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) GetInvoice(ctx context.Context, actor *domain.Actor, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetScoped(ctx, id, scope.Invoices(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context, actor *domain.Actor) ([]domain.Invoice, error) {
	return s.invoices.List(ctx, scope.Invoices(actor))
}

func (s *Service) UpdateInvoiceStatus(ctx context.Context, actor *domain.Actor, id int64, req UpdateInvoiceStatusRequest) (*domain.Invoice, error) {
	inv, err := s.GetInvoice(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := scope.CheckDepartmentWrite(actor, inv.DepartmentID); err != nil {
		return nil, err
	}

	next := domain.InvoiceStatus(req.Status)
	switch next {
	case domain.InvoiceDraft, domain.InvoiceSent, domain.InvoicePaid, domain.InvoiceVoid:
	default:
		return nil, ErrValidation
	}
	if !inv.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.invoices.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	inv.Status = next
	return inv, nil
}

func (s *Service) CreateExpense(ctx context.Context, actor *domain.Actor, req CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, ErrValidation
	}

	departmentID := actor.FirstDepartment()
	if req.DepartmentID != nil {
		departmentID = *req.DepartmentID
	}
	if departmentID == 0 {
		return nil, ErrValidation
	}
	if err := scope.CheckDepartmentWrite(actor, departmentID); err != nil {
		return nil, err
	}

	incurred := s.now().UTC()
	if req.IncurredAt != nil {
		incurred = req.IncurredAt.UTC()
	}

	createdBy := actor.ID
	e := &domain.Expense{
		DepartmentID: departmentID,
		Category:     req.Category,
		Description:  req.Description,
		Amount:       req.Amount.Round(2),
		IncurredAt:   incurred,
		CreatedBy:    &createdBy,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListExpenses(ctx context.Context, actor *domain.Actor) ([]domain.Expense, error) {
	return s.expenses.List(ctx, scope.Expenses(actor))
}

func isNumberCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_invoices_number"
}
