package clients

import (
	"context"
	"testing"

	"studiodesk/internal/domain"
	"studiodesk/internal/scope"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 11
	}
	return args.Error(0)
}

func (m *MockClientRepository) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Client, error) {
	args := m.Called(ctx, id, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Client, error) {
	args := m.Called(ctx, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func madminActor(depts ...int64) *domain.Actor {
	return &domain.Actor{
		ID:            5,
		Username:      "madmin1",
		Roles:         domain.NewRoleSet(domain.RoleMadmin),
		DepartmentIDs: depts,
	}
}

func TestCreateClient(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("FindByEmail", mock.Anything, "kate@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	c, err := svc.Create(context.Background(), madminActor(2), CreateClientRequest{
		Name:  "Kate",
		Email: "kate@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), c.DepartmentID)
	assert.True(t, c.IsActive)
	assert.Equal(t, int64(5), *c.CreatedBy)
	repo.AssertExpectations(t)
}

func TestCreateClientForeignDepartment(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	dept := int64(3)
	_, err := svc.Create(context.Background(), madminActor(2), CreateClientRequest{
		Name:         "Kate",
		Email:        "kate@example.com",
		DepartmentID: &dept,
	})

	assert.ErrorIs(t, err, scope.ErrNoDepartmentAccess)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("FindByEmail", mock.Anything, "kate@example.com").
		Return(&domain.Client{ID: 1, Email: "kate@example.com"}, nil)

	_, err := svc.Create(context.Background(), madminActor(2), CreateClientRequest{
		Name:  "Kate",
		Email: "kate@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateClientConstraintRace(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("FindByEmail", mock.Anything, "kate@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_clients_email"})

	_, err := svc.Create(context.Background(), madminActor(2), CreateClientRequest{
		Name:  "Kate",
		Email: "kate@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateClientMovesDepartment(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	existing := &domain.Client{ID: 7, Name: "Kate", Email: "kate@example.com", DepartmentID: 2, IsActive: true}
	repo.On("GetScoped", mock.Anything, int64(7), mock.Anything).Return(existing, nil)

	dept := int64(3)
	_, err := svc.Update(context.Background(), madminActor(2), 7, UpdateClientRequest{DepartmentID: &dept})

	assert.ErrorIs(t, err, scope.ErrNoDepartmentAccess)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateClientDeactivate(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	existing := &domain.Client{ID: 7, Name: "Kate", Email: "kate@example.com", DepartmentID: 2, IsActive: true}
	repo.On("GetScoped", mock.Anything, int64(7), mock.Anything).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	inactive := false
	c, err := svc.Update(context.Background(), madminActor(2), 7, UpdateClientRequest{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, c.IsActive)
	assert.Equal(t, "Kate", c.Name)
}

func TestGetClientOutOfScope(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("GetScoped", mock.Anything, int64(99), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), madminActor(2), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
