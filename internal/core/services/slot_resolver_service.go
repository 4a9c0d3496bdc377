package services

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// SlotResolverService produces the bookable (date, time) pairs for a doctor.
// The raw per-doctor list is cached; the optional exact-date filter runs
// after the cache so one entry serves every selected date.
type SlotResolverService struct {
	backendPort out.BackendPort
	cachePort   out.CachePort
	logger      out.LoggerPort
}

func NewSlotResolverService(
	backendPort out.BackendPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *SlotResolverService {
	return &SlotResolverService{
		backendPort: backendPort,
		cachePort:   cachePort,
		logger:      logger.WithModule("SlotResolverService"),
	}
}

func (s *SlotResolverService) Resolve(ctx context.Context, doctorID int64, date *json_types.Date) ([]domain.AvailabilitySlot, error) {
	// No doctor selected: empty result, no call.
	if doctorID == 0 {
		return []domain.AvailabilitySlot{}, nil
	}

	slots, cached := s.cachedSlots(ctx, doctorID)
	if !cached {
		var err error
		slots, err = s.backendPort.ListDoctorSlots(ctx, doctorID)
		if err != nil {
			s.logger.Error("slots.resolve.fetch_failed", out.LogFields{
				"doctorId": doctorID,
				"error":    err.Error(),
			})
			return nil, err
		}

		if s.cachePort != nil {
			s.cachePort.StoreSlots(ctx, doctorID, slots)
		}
	}

	filtered := FilterSlotsByDate(slots, date)

	s.logger.Debug("slots.resolve.done", out.LogFields{
		"doctorId": doctorID,
		"cached":   cached,
		"total":    len(slots),
		"returned": len(filtered),
	})

	return filtered, nil
}

func (s *SlotResolverService) InvalidateDoctor(ctx context.Context, doctorID int64) {
	if s.cachePort == nil {
		return
	}

	s.cachePort.InvalidateSlots(ctx, doctorID)
	s.logger.Debug("slots.cache.invalidated", out.LogFields{
		"doctorId": doctorID,
	})
}

func (s *SlotResolverService) cachedSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, bool) {
	if s.cachePort == nil {
		return nil, false
	}
	return s.cachePort.GetSlots(ctx, doctorID)
}

// FilterSlotsByDate keeps only entries whose data_disponivel equals the
// selected date, comparing the backend's serialization exactly. A nil date
// means no pre-selection: all entries pass and the composite key
// startTime-availableDate is the slot identity.
func FilterSlotsByDate(slots []domain.AvailabilitySlot, date *json_types.Date) []domain.AvailabilitySlot {
	if date == nil {
		return slots
	}

	filtered := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		if slot.AvailableDate.Equal(*date) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
