package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeLayout = "15:04:05"

// TimeOfDay is a wall-clock time as serialized by the backend: "15:04:05".
// The shorter "15:04" form also appears in schedule management payloads, so
// both are accepted on input; output is always the full form.
type TimeOfDay struct {
	Time time.Time
}

func ParseTimeOfDay(str string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeLayout, str)
	if err != nil {
		parsed, err = time.Parse("15:04", str)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("failed to parse time: %v", err)
		}
	}
	return TimeOfDay{Time: parsed}, nil
}

func (t TimeOfDay) String() string {
	return t.Time.Format(timeLayout)
}

func (t TimeOfDay) IsZero() bool {
	return t.Time.IsZero()
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	if len(data) < 2 {
		return fmt.Errorf("failed to parse time: %q", string(data))
	}
	str := string(data[1 : len(data)-1])

	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
