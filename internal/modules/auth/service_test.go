package auth

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

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, username string, roles []string, departmentIDs []int64, clientID *int64) (string, error) {
	args := m.Called(userID, username, roles, departmentIDs, clientID)
	return args.String(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	user := &domain.User{
		ID:            5,
		Username:      "madmin1",
		PasswordHash:  hashOf(t, "secret123"),
		Roles:         []domain.Role{domain.RoleMadmin},
		DepartmentIDs: []int64{2},
		IsActive:      true,
	}
	users.On("GetByUsername", mock.Anything, "madmin1").Return(user, nil)
	tokens.On("GenerateToken", int64(5), "madmin1", []string{"madmin"}, []int64{2}, (*int64)(nil)).
		Return("signed-token", nil)

	res, err := svc.Login(context.Background(), LoginRequest{Username: "madmin1", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, int64(5), res.User.ID)
	tokens.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	user := &domain.User{ID: 5, Username: "madmin1", PasswordHash: hashOf(t, "secret123"), IsActive: true}
	users.On("GetByUsername", mock.Anything, "madmin1").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "madmin1", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken")
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	user := &domain.User{ID: 5, Username: "madmin1", PasswordHash: hashOf(t, "secret123"), IsActive: false}
	users.On("GetByUsername", mock.Anything, "madmin1").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "madmin1", Password: "secret123"})

	assert.ErrorIs(t, err, ErrUserDisabled)
}
