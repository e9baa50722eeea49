package booking

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

// BookingRepository defines the ledger's persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	CreateWithClient(ctx context.Context, c *domain.Client, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Booking, error)
	HasOverlap(ctx context.Context, studioID int64, date, start, end time.Time, excludeID int64) (bool, error)
	ListForStudioDate(ctx context.Context, studioID int64, date time.Time) ([]domain.Booking, error)
	List(ctx context.Context, from, to time.Time, studioID *int64, sc func(*gorm.DB) *gorm.DB) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// StudioRepository defines the studio lookups the ledger needs.
type StudioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
	FindActiveByType(ctx context.Context, t domain.StudioType) (*domain.Studio, error)
}

// EventSink receives ledger mutations for the live schedule feed. Delivery is
// best effort; a nil sink disables publishing.
type EventSink interface {
	Publish(event domain.BookingEvent)
}
