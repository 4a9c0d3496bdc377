package json_types

import (
	"encoding/json"
	"testing"
	"time"
)

// ---------- Date ----------

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-09-12")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if date.String() != "2024-09-12" {
		t.Errorf("expected 2024-09-12, got %s", date.String())
	}
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{"12/09/2024", "2024-9-12", "2024-09-12T10:00:00", "", "not-a-date"}
	for _, input := range cases {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}

func TestNewDate(t *testing.T) {
	date := NewDate(2030, time.September, 12)
	if date.String() != "2030-09-12" {
		t.Errorf("expected 2030-09-12, got %s", date.String())
	}
}

func TestDateEqual(t *testing.T) {
	a, _ := ParseDate("2024-09-12")
	b := NewDate(2024, time.September, 12)
	c, _ := ParseDate("2024-09-13")

	if !a.Equal(b) {
		t.Error("expected dates with identical serialization to be equal")
	}
	if a.Equal(c) {
		t.Error("expected different calendar dates not to be equal")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	date, _ := ParseDate("2024-09-12")

	data, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `"2024-09-12"` {
		t.Errorf("expected quoted date, got %s", string(data))
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !decoded.Equal(date) {
		t.Errorf("round trip changed value: %s", decoded.String())
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var date Date
	if err := json.Unmarshal([]byte(`"12.09.2024"`), &date); err == nil {
		t.Error("expected error for invalid date payload")
	}
}

// ---------- TimeOfDay ----------

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"09:00:00", "09:00:00"},
		{"13:30:00", "13:30:00"},
		{"09:00", "09:00:00"},
		{"23:59", "23:59:00"},
	}

	for _, tc := range cases {
		parsed, err := ParseTimeOfDay(tc.input)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) returned error: %v", tc.input, err)
			continue
		}
		if parsed.String() != tc.expected {
			t.Errorf("ParseTimeOfDay(%q) = %s, expected %s", tc.input, parsed.String(), tc.expected)
		}
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	cases := []string{"9am", "25:00:00", "", "09-00-00"}
	for _, input := range cases {
		if _, err := ParseTimeOfDay(input); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	parsed, _ := ParseTimeOfDay("09:00:00")

	data, err := json.Marshal(parsed)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `"09:00:00"` {
		t.Errorf("expected quoted time, got %s", string(data))
	}

	var decoded TimeOfDay
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded.String() != "09:00:00" {
		t.Errorf("round trip changed value: %s", decoded.String())
	}
}
