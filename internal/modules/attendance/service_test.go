package attendance

import (
	"context"
	"testing"
	"time"

	"studiodesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 21
	}
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindOpen(ctx context.Context, userID int64, date time.Time) (*domain.Attendance, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) SetClockOut(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockAttendanceRepository) List(ctx context.Context, from, to time.Time, sc func(*gorm.DB) *gorm.DB) ([]domain.Attendance, error) {
	args := m.Called(ctx, from, to, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

var fixedNow = time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

func newTestService(repo *MockAttendanceRepository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func staffActor() *domain.Actor {
	return &domain.Actor{
		ID:            8,
		Username:      "staff1",
		Roles:         domain.NewRoleSet(domain.RoleStaff),
		DepartmentIDs: []int64{1},
	}
}

func TestClockIn(t *testing.T) {
	repo := new(MockAttendanceRepository)
	svc := newTestService(repo)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo.On("FindOpen", mock.Anything, int64(8), today).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attendance")).Return(nil)

	a, err := svc.ClockIn(context.Background(), staffActor(), ClockInRequest{Notes: "morning shift"})

	assert.NoError(t, err)
	assert.Equal(t, int64(8), a.UserID)
	assert.Equal(t, int64(1), a.DepartmentID)
	assert.Equal(t, today, a.Date)
	assert.Equal(t, fixedNow, a.ClockIn)
	assert.Nil(t, a.ClockOut)
	repo.AssertExpectations(t)
}

func TestClockInTwiceSameDay(t *testing.T) {
	repo := new(MockAttendanceRepository)
	svc := newTestService(repo)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo.On("FindOpen", mock.Anything, int64(8), today).
		Return(&domain.Attendance{ID: 21, UserID: 8, Date: today, ClockIn: fixedNow.Add(-time.Hour)}, nil)

	_, err := svc.ClockIn(context.Background(), staffActor(), ClockInRequest{})

	assert.ErrorIs(t, err, ErrAlreadyOpen)
	repo.AssertNotCalled(t, "Create")
}

func TestClockInWithoutDepartment(t *testing.T) {
	svc := newTestService(new(MockAttendanceRepository))

	actor := staffActor()
	actor.DepartmentIDs = nil
	_, err := svc.ClockIn(context.Background(), actor, ClockInRequest{})

	assert.ErrorIs(t, err, ErrNoDepartment)
}

func TestClockOut(t *testing.T) {
	repo := new(MockAttendanceRepository)
	svc := newTestService(repo)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	open := &domain.Attendance{ID: 21, UserID: 8, Date: today, ClockIn: fixedNow.Add(-4 * time.Hour)}
	repo.On("FindOpen", mock.Anything, int64(8), today).Return(open, nil)
	repo.On("SetClockOut", mock.Anything, int64(21), fixedNow).Return(nil)

	a, err := svc.ClockOut(context.Background(), staffActor())

	assert.NoError(t, err)
	assert.NotNil(t, a.ClockOut)
	assert.InDelta(t, 4.0, a.WorkedHours(), 0.001)
	repo.AssertExpectations(t)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	repo := new(MockAttendanceRepository)
	svc := newTestService(repo)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo.On("FindOpen", mock.Anything, int64(8), today).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ClockOut(context.Background(), staffActor())

	assert.ErrorIs(t, err, ErrNoOpenRecord)
}

func TestListDefaultsToCurrentMonth(t *testing.T) {
	repo := new(MockAttendanceRepository)
	svc := newTestService(repo)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	repo.On("List", mock.Anything, from, to, mock.Anything).Return([]domain.Attendance{}, nil)

	_, err := svc.List(context.Background(), staffActor(), ListAttendanceRequest{})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListInvertedRange(t *testing.T) {
	svc := newTestService(new(MockAttendanceRepository))

	_, err := svc.List(context.Background(), staffActor(), ListAttendanceRequest{
		From: "2026-09-10",
		To:   "2026-09-01",
	})

	assert.ErrorIs(t, err, ErrValidation)
}
