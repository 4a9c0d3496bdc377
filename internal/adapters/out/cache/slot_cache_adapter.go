package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// SlotCacheAdapter caches the raw availability list per doctor. Entries are
// dropped by LRU pressure or by appointment events from the broker; there is
// no TTL, the broker is the source of staleness.
type SlotCacheAdapter struct {
	cache  *lru.Cache[int64, []domain.AvailabilitySlot]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewSlotCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*SlotCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruCache, err := lru.New[int64, []domain.AvailabilitySlot](cfg.Cache.SlotsSize)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.SlotsSize,
		})
		return nil, err
	}

	return &SlotCacheAdapter{
		cache:  lruCache,
		logger: logger,
	}, nil
}

func (c *SlotCacheAdapter) GetSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots, exists := c.cache.Get(doctorID)
	if !exists {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"doctorId": doctorID,
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"doctorId":   doctorID,
		"slotsCount": len(slots),
	})
	return slots, true
}

func (c *SlotCacheAdapter) StoreSlots(ctx context.Context, doctorID int64, slots []domain.AvailabilitySlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.slots.store", out.LogFields{
		"doctorId":   doctorID,
		"slotsCount": len(slots),
	})

	c.cache.Add(doctorID, slots)
}

func (c *SlotCacheAdapter) InvalidateSlots(ctx context.Context, doctorID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Remove(doctorID)
}
