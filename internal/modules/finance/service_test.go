package finance

import (
	"context"
	"regexp"
	"testing"
	"time"

	"studiodesk/internal/domain"
	"studiodesk/internal/scope"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	if args.Error(0) == nil {
		inv.ID = 51
	}
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Invoice, error) {
	args := m.Called(ctx, id, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Invoice, error) {
	args := m.Called(ctx, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = 61
	}
	return args.Error(0)
}

func (m *MockExpenseRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Expense, error) {
	args := m.Called(ctx, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Client, error) {
	args := m.Called(ctx, id, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestService(invoices *MockInvoiceRepository, expenses *MockExpenseRepository, clients *MockClientReader) *Service {
	svc := NewService(invoices, expenses, clients)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func madminActor(depts ...int64) *domain.Actor {
	return &domain.Actor{
		ID:            5,
		Username:      "madmin1",
		Roles:         domain.NewRoleSet(domain.RoleMadmin),
		DepartmentIDs: depts,
	}
}

func TestCreateInvoice(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	clients := new(MockClientReader)
	svc := newTestService(invoices, new(MockExpenseRepository), clients)

	clients.On("GetScoped", mock.Anything, int64(42), mock.Anything).
		Return(&domain.Client{ID: 42, DepartmentID: 2}, nil)
	invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.CreateInvoice(context.Background(), madminActor(2), CreateInvoiceRequest{
		ClientID: 42,
		Amount:   decimal.NewFromInt(200),
		TaxRate:  decimal.NewFromInt(12),
	})

	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^INV20260901-[0-9A-F]{6}$`), inv.InvoiceNumber)
	assert.True(t, inv.Tax.Equal(decimal.NewFromInt(24)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(224)))
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, int64(2), inv.DepartmentID)
}

func TestCreateInvoiceRoundsTax(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	clients := new(MockClientReader)
	svc := newTestService(invoices, new(MockExpenseRepository), clients)

	clients.On("GetScoped", mock.Anything, int64(42), mock.Anything).
		Return(&domain.Client{ID: 42, DepartmentID: 2}, nil)
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := svc.CreateInvoice(context.Background(), madminActor(2), CreateInvoiceRequest{
		ClientID: 42,
		Amount:   decimal.RequireFromString("99.99"),
		TaxRate:  decimal.NewFromInt(7),
	})

	assert.NoError(t, err)
	assert.True(t, inv.Tax.Equal(decimal.RequireFromString("7.00")), "tax was %s", inv.Tax)
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("106.99")))
}

func TestCreateInvoiceNumberCollisionRetries(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	clients := new(MockClientReader)
	svc := newTestService(invoices, new(MockExpenseRepository), clients)

	clients.On("GetScoped", mock.Anything, int64(42), mock.Anything).
		Return(&domain.Client{ID: 42, DepartmentID: 2}, nil)
	invoices.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_invoices_number"}).Once()
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.CreateInvoice(context.Background(), madminActor(2), CreateInvoiceRequest{
		ClientID: 42,
		Amount:   decimal.NewFromInt(100),
	})

	assert.NoError(t, err)
	invoices.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateInvoiceZeroAmount(t *testing.T) {
	svc := newTestService(new(MockInvoiceRepository), new(MockExpenseRepository), new(MockClientReader))

	_, err := svc.CreateInvoice(context.Background(), madminActor(2), CreateInvoiceRequest{
		ClientID: 42,
		Amount:   decimal.Zero,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceStatusTransitions(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	svc := newTestService(invoices, new(MockExpenseRepository), new(MockClientReader))

	draft := &domain.Invoice{ID: 51, DepartmentID: 2, Status: domain.InvoiceDraft}
	invoices.On("GetScoped", mock.Anything, int64(51), mock.Anything).Return(draft, nil)
	invoices.On("UpdateStatus", mock.Anything, int64(51), domain.InvoiceSent).Return(nil)

	inv, err := svc.UpdateInvoiceStatus(context.Background(), madminActor(2), 51, UpdateInvoiceStatusRequest{Status: "sent"})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceSent, inv.Status)
}

func TestInvoiceDraftToPaidRejected(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	svc := newTestService(invoices, new(MockExpenseRepository), new(MockClientReader))

	draft := &domain.Invoice{ID: 51, DepartmentID: 2, Status: domain.InvoiceDraft}
	invoices.On("GetScoped", mock.Anything, int64(51), mock.Anything).Return(draft, nil)

	_, err := svc.UpdateInvoiceStatus(context.Background(), madminActor(2), 51, UpdateInvoiceStatusRequest{Status: "paid"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	invoices.AssertNotCalled(t, "UpdateStatus")
}

func TestVoidPaidInvoiceRejected(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	svc := newTestService(invoices, new(MockExpenseRepository), new(MockClientReader))

	paid := &domain.Invoice{ID: 51, DepartmentID: 2, Status: domain.InvoicePaid}
	invoices.On("GetScoped", mock.Anything, int64(51), mock.Anything).Return(paid, nil)

	_, err := svc.UpdateInvoiceStatus(context.Background(), madminActor(2), 51, UpdateInvoiceStatusRequest{Status: "void"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCreateExpense(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := newTestService(new(MockInvoiceRepository), expenses, new(MockClientReader))

	expenses.On("Create", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil)

	e, err := svc.CreateExpense(context.Background(), madminActor(2), CreateExpenseRequest{
		Category: "equipment",
		Amount:   decimal.RequireFromString("149.50"),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), e.DepartmentID)
	assert.Equal(t, fixedNow, e.IncurredAt)
	expenses.AssertExpectations(t)
}

func TestCreateExpenseForeignDepartment(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := newTestService(new(MockInvoiceRepository), expenses, new(MockClientReader))

	dept := int64(3)
	_, err := svc.CreateExpense(context.Background(), madminActor(2), CreateExpenseRequest{
		DepartmentID: &dept,
		Category:     "equipment",
		Amount:       decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, scope.ErrNoDepartmentAccess)
	expenses.AssertNotCalled(t, "Create")
}
