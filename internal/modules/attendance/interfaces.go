package attendance

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a *domain.Attendance) error
	FindOpen(ctx context.Context, userID int64, date time.Time) (*domain.Attendance, error)
	SetClockOut(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, from, to time.Time, sc func(*gorm.DB) *gorm.DB) ([]domain.Attendance, error)
}
