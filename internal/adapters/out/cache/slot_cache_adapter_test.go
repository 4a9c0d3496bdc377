package cache

import (
	"context"
	"testing"

	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

func testSlot(timeStr, dateStr string) domain.AvailabilitySlot {
	startTime, _ := json_types.ParseTimeOfDay(timeStr)
	date, _ := json_types.ParseDate(dateStr)
	return domain.AvailabilitySlot{AvailableDate: date, StartTime: startTime}
}

func enabledCacheConfig(size int) *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.SlotsSize = size
	return cfg
}

func TestCacheDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}

	adapter, err := NewSlotCacheAdapter(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("NewSlotCacheAdapter returned error: %v", err)
	}
	if adapter != nil {
		t.Error("disabled cache must construct as nil")
	}
}

func TestCacheStoreAndGet(t *testing.T) {
	adapter, err := NewSlotCacheAdapter(enabledCacheConfig(10), nopLogger{})
	if err != nil {
		t.Fatalf("NewSlotCacheAdapter returned error: %v", err)
	}

	ctx := context.Background()
	stored := []domain.AvailabilitySlot{testSlot("09:00:00", "2030-09-12")}
	adapter.StoreSlots(ctx, 7, stored)

	slots, hit := adapter.GetSlots(ctx, 7)
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if len(slots) != 1 || slots[0].Key() != "09:00:00-2030-09-12" {
		t.Errorf("unexpected cached slots: %+v", slots)
	}

	if _, hit := adapter.GetSlots(ctx, 8); hit {
		t.Error("expected a miss for a different doctor")
	}
}

func TestCacheInvalidate(t *testing.T) {
	adapter, _ := NewSlotCacheAdapter(enabledCacheConfig(10), nopLogger{})
	ctx := context.Background()

	adapter.StoreSlots(ctx, 7, []domain.AvailabilitySlot{testSlot("09:00:00", "2030-09-12")})
	adapter.InvalidateSlots(ctx, 7)

	if _, hit := adapter.GetSlots(ctx, 7); hit {
		t.Error("expected a miss after invalidation")
	}
}

func TestCacheEvictsOldestUnderPressure(t *testing.T) {
	adapter, _ := NewSlotCacheAdapter(enabledCacheConfig(2), nopLogger{})
	ctx := context.Background()

	for doctorID := int64(1); doctorID <= 3; doctorID++ {
		adapter.StoreSlots(ctx, doctorID, []domain.AvailabilitySlot{testSlot("09:00:00", "2030-09-12")})
	}

	if _, hit := adapter.GetSlots(ctx, 1); hit {
		t.Error("expected the oldest entry to be evicted")
	}
	if _, hit := adapter.GetSlots(ctx, 3); !hit {
		t.Error("expected the newest entry to survive")
	}
}
