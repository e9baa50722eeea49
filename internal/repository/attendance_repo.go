package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

type attendanceModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	UserID       int64      `gorm:"column:user_id;index"`
	DepartmentID int64      `gorm:"column:department_id;index"`
	Date         time.Time  `gorm:"column:date;index"`
	ClockIn      time.Time  `gorm:"column:clock_in"`
	ClockOut     *time.Time `gorm:"column:clock_out"`
	Notes        *string    `gorm:"column:notes"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (attendanceModel) TableName() string { return "attendance_records" }

func toDomainAttendance(m attendanceModel) *domain.Attendance {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Attendance{
		ID:           m.ID,
		UserID:       m.UserID,
		DepartmentID: m.DepartmentID,
		Date:         m.Date,
		ClockIn:      m.ClockIn,
		ClockOut:     m.ClockOut,
		Notes:        notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	m := attendanceModel{
		UserID:       a.UserID,
		DepartmentID: a.DepartmentID,
		Date:         a.Date,
		ClockIn:      a.ClockIn,
		ClockOut:     a.ClockOut,
	}
	if a.Notes != "" {
		v := a.Notes
		m.Notes = &v
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainAttendance(m)
	return nil
}

// FindOpen returns the user's not-yet-clocked-out record for the date, if any.
func (r *AttendanceRepository) FindOpen(ctx context.Context, userID int64, date time.Time) (*domain.Attendance, error) {
	var m attendanceModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND clock_out IS NULL", userID, date).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAttendance(m), nil
}

func (r *AttendanceRepository) SetClockOut(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&attendanceModel{}).
		Where("id = ?", id).
		Update("clock_out", at).Error
}

func (r *AttendanceRepository) List(ctx context.Context, from, to time.Time, sc func(*gorm.DB) *gorm.DB) ([]domain.Attendance, error) {
	var ms []attendanceModel
	tx := r.db.WithContext(ctx).Scopes(sc).
		Where("date >= ? AND date <= ?", from, to).
		Order("date desc, clock_in desc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Attendance, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainAttendance(m))
	}
	return out, nil
}
