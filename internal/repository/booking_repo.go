package repository

import (
	"context"
	"strings"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	BookingNumber string     `gorm:"column:booking_number;uniqueIndex:idx_bookings_number"`
	StudioID      int64      `gorm:"column:studio_id;index"`
	ProjectID     *int64     `gorm:"column:project_id"`
	ClientID      *int64     `gorm:"column:client_id"`
	DepartmentID  int64      `gorm:"column:department_id;index"`
	Date          time.Time  `gorm:"column:date;index"`
	StartTime     time.Time  `gorm:"column:start_time"`
	EndTime       time.Time  `gorm:"column:end_time"`
	Status        string     `gorm:"column:status"`
	Purpose       *string    `gorm:"column:purpose"`
	Notes         *string    `gorm:"column:notes"`
	TotalCost     float64    `gorm:"column:total_cost"`
	CreatedBy     *int64     `gorm:"column:created_by"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var purpose, notes string
	if m.Purpose != nil {
		purpose = *m.Purpose
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:            m.ID,
		BookingNumber: m.BookingNumber,
		StudioID:      m.StudioID,
		ProjectID:     m.ProjectID,
		ClientID:      m.ClientID,
		DepartmentID:  m.DepartmentID,
		Date:          m.Date,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Status:        domain.BookingStatus(m.Status),
		Purpose:       purpose,
		Notes:         notes,
		TotalCost:     m.TotalCost,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var purpose, notes *string
	if b.Purpose != "" {
		v := b.Purpose
		purpose = &v
	}
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		StudioID:      b.StudioID,
		ProjectID:     b.ProjectID,
		ClientID:      b.ClientID,
		DepartmentID:  b.DepartmentID,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		Purpose:       purpose,
		Notes:         notes,
		TotalCost:     b.TotalCost,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// CreateWithClient runs the public-booking flow atomically: reuse the client
// matching the email or insert a new one, then insert the booking pointing at
// it. Either both rows land or neither does.
func (r *BookingRepository) CreateWithClient(ctx context.Context, c *domain.Client, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cm clientModel
		err := tx.Where("lower(email) = ?", strings.ToLower(c.Email)).First(&cm).Error
		switch {
		case err == nil:
			*c = *toDomainClient(cm)
		case err == gorm.ErrRecordNotFound:
			cm = toClientModel(c)
			if err := tx.Create(&cm).Error; err != nil {
				return err
			}
			*c = *toDomainClient(cm)
		default:
			return err
		}

		b.ClientID = &c.ID
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetScoped fetches one booking through the actor's visibility scope; a row
// outside the scope reads as not found.
func (r *BookingRepository) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Scopes(sc).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// HasOverlap reports whether any non-cancelled booking for the studio/date
// intersects [start, end). excludeID skips the booking being rescheduled;
// pass 0 on create.
func (r *BookingRepository) HasOverlap(ctx context.Context, studioID int64, date time.Time, start, end time.Time, excludeID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("studio_id = ?", studioID).
		Where("date = ?", date).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ListForStudioDate returns the non-cancelled bookings the availability
// engine checks slots against.
func (r *BookingRepository) ListForStudioDate(ctx context.Context, studioID int64, date time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("studio_id = ?", studioID).
		Where("date = ?", date).
		Where("status <> ?", string(domain.BookingCancelled)).
		Order("start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) List(ctx context.Context, from, to time.Time, studioID *int64, sc func(*gorm.DB) *gorm.DB) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Scopes(sc).
		Where("date >= ? AND date <= ?", from, to).
		Order("start_time")
	if studioID != nil {
		q = q.Where("studio_id = ?", *studioID)
	}

	var ms []bookingModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) Cancel(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": at,
		}).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}
