package domain

import (
	"fmt"
	"strings"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

// AvailabilitySlot is a bookable (date, start time) pair for a doctor.
// Ephemeral: re-fetched whenever the doctor or date selection changes and
// never persisted.
type AvailabilitySlot struct {
	AvailableDate json_types.Date      `json:"data_disponivel"`
	StartTime     json_types.TimeOfDay `json:"horario_inicial"`
	EndTime       json_types.TimeOfDay `json:"horario_final,omitempty"`
}

// slotKeySeparator joins start time and date into one slot identity. The
// time component never contains '-', so cutting at the first separator
// reproduces both values exactly.
const slotKeySeparator = "-"

// Key is the composite slot identity, e.g. "09:00:00-2024-09-12". A doctor
// may offer the same start time on several dates, so both fields are needed
// to identify a slot.
func (s AvailabilitySlot) Key() string {
	return s.StartTime.String() + slotKeySeparator + s.AvailableDate.String()
}

// SplitSlotKey decomposes a composite key back into its start time and date.
func SplitSlotKey(key string) (startTime json_types.TimeOfDay, date json_types.Date, err error) {
	timePart, datePart, found := strings.Cut(key, slotKeySeparator)
	if !found {
		return startTime, date, fmt.Errorf("invalid slot key: %q", key)
	}

	startTime, err = json_types.ParseTimeOfDay(timePart)
	if err != nil {
		return startTime, date, fmt.Errorf("invalid slot key %q: %v", key, err)
	}

	date, err = json_types.ParseDate(datePart)
	if err != nil {
		return startTime, date, fmt.Errorf("invalid slot key %q: %v", key, err)
	}

	return startTime, date, nil
}
