package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date as the clinic backend serializes it: "2006-01-02",
// no time component, no timezone. Comparisons between a selected date and a
// slot's data_disponivel must go through the formatted string, never through
// locale-dependent formatting.
type Date struct {
	Date time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(str string) (Date, error) {
	parsed, err := time.Parse(dateLayout, str)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date: %v", err)
	}
	return Date{Date: parsed}, nil
}

func (d Date) String() string {
	return d.Date.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.Date.IsZero()
}

// Equal is an exact calendar match on the wire representation.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d *Date) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	if len(data) < 2 {
		return fmt.Errorf("failed to parse date: %q", string(data))
	}
	str := string(data[1 : len(data)-1])

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
