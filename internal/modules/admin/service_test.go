package admin

import (
	"context"
	"testing"

	"studiodesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 9
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Create(ctx context.Context, d *domain.Department) error {
	args := m.Called(ctx, d)
	if args.Error(0) == nil {
		d.ID = 4
	}
	return args.Error(0)
}

type MockIPBlockStore struct {
	mock.Mock
}

func (m *MockIPBlockStore) Block(ctx context.Context, ip, reason string) error {
	args := m.Called(ctx, ip, reason)
	return args.Error(0)
}

func (m *MockIPBlockStore) Unblock(ctx context.Context, ip string) error {
	args := m.Called(ctx, ip)
	return args.Error(0)
}

func TestCreateUser(t *testing.T) {
	users := new(MockUserRepository)
	depts := new(MockDepartmentRepository)
	svc := NewService(users, depts, new(MockIPBlockStore))

	users.On("GetByUsername", mock.Anything, "engineer1").Return(nil, gorm.ErrRecordNotFound)
	depts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Department{ID: 1, Name: "Recording"}, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username:      "engineer1",
		Email:         "engineer1@example.com",
		Password:      "secret-pass",
		Name:          "Sam",
		Roles:         []string{"engineer"},
		DepartmentIDs: []int64{1},
	})

	assert.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleEngineer}, u.Roles)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pass")))
	users.AssertExpectations(t)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockDepartmentRepository), new(MockIPBlockStore))

	users.On("GetByUsername", mock.Anything, "engineer1").
		Return(&domain.User{ID: 3, Username: "engineer1"}, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "engineer1",
		Email:    "engineer1@example.com",
		Password: "secret-pass",
		Name:     "Sam",
		Roles:    []string{"engineer"},
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "Create")
}

func TestCreateUserUnknownRole(t *testing.T) {
	svc := NewService(new(MockUserRepository), new(MockDepartmentRepository), new(MockIPBlockStore))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "engineer1",
		Email:    "engineer1@example.com",
		Password: "secret-pass",
		Name:     "Sam",
		Roles:    []string{"superuser"},
	})

	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCreateUserUnknownDepartment(t *testing.T) {
	users := new(MockUserRepository)
	depts := new(MockDepartmentRepository)
	svc := NewService(users, depts, new(MockIPBlockStore))

	users.On("GetByUsername", mock.Anything, "engineer1").Return(nil, gorm.ErrRecordNotFound)
	depts.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username:      "engineer1",
		Email:         "engineer1@example.com",
		Password:      "secret-pass",
		Name:          "Sam",
		Roles:         []string{"engineer"},
		DepartmentIDs: []int64{99},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUserReplacesRoles(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockDepartmentRepository), new(MockIPBlockStore))

	existing := &domain.User{ID: 9, Username: "engineer1", Roles: []domain.Role{domain.RoleEngineer}, IsActive: true}
	users.On("GetByID", mock.Anything, int64(9)).Return(existing, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.UpdateUser(context.Background(), 9, UpdateUserRequest{
		Roles: []string{"madmin", "staff"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleMadmin, domain.RoleStaff}, u.Roles)
}

func TestDeactivateUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockDepartmentRepository), new(MockIPBlockStore))

	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9, IsActive: true}, nil)
	users.On("SetActive", mock.Anything, int64(9), false).Return(nil)

	err := svc.DeactivateUser(context.Background(), 9)

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestDeactivateMissingUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockDepartmentRepository), new(MockIPBlockStore))

	users.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeactivateUser(context.Background(), 77)

	assert.ErrorIs(t, err, ErrNotFound)
	users.AssertNotCalled(t, "SetActive")
}

func TestBlockIP(t *testing.T) {
	blocks := new(MockIPBlockStore)
	svc := NewService(new(MockUserRepository), new(MockDepartmentRepository), blocks)

	blocks.On("Block", mock.Anything, "203.0.113.7", "abuse").Return(nil)

	err := svc.BlockIP(context.Background(), "203.0.113.7", "abuse")

	assert.NoError(t, err)
	blocks.AssertExpectations(t)
}

func TestBlockIPRejectsGarbage(t *testing.T) {
	blocks := new(MockIPBlockStore)
	svc := NewService(new(MockUserRepository), new(MockDepartmentRepository), blocks)

	err := svc.BlockIP(context.Background(), "not-an-ip", "abuse")

	assert.ErrorIs(t, err, ErrValidation)
	blocks.AssertNotCalled(t, "Block")
}
