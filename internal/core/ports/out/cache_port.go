package out

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// CachePort caches the raw (unfiltered) slot list per doctor. Date filtering
// happens after the cache so one entry serves every selected date.
type CachePort interface {
	GetSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, bool)
	StoreSlots(ctx context.Context, doctorID int64, slots []domain.AvailabilitySlot)
	InvalidateSlots(ctx context.Context, doctorID int64)
}
