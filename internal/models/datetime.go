package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire format used by the mini-program frontend for
// every timestamp field.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime wraps time.Time so that JSON payloads carry
// "yyyy-MM-dd HH:mm:ss" instead of RFC 3339.
type DateTime time.Time

func Now() DateTime {
	return DateTime(time.Now())
}

func (t DateTime) Time() time.Time {
	return time.Time(t)
}

func (t DateTime) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t DateTime) String() string {
	return time.Time(t).Format(DateTimeLayout)
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.String() + `"`), nil
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = DateTime{}
		return nil
	}
	parsed, err := parseDateTime(s)
	if err != nil {
		return err
	}
	*t = DateTime(parsed)
	return nil
}

func (t DateTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

func (t *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = DateTime{}
		return nil
	case time.Time:
		*t = DateTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
}

func (t *DateTime) scanString(s string) error {
	if s == "" {
		*t = DateTime{}
		return nil
	}
	parsed, err := parseDateTime(s)
	if err != nil {
		return err
	}
	*t = DateTime(parsed)
	return nil
}

// parseDateTime accepts the wire layout plus the formats drivers hand back
// when a datetime column round-trips as text.
func parseDateTime(s string) (time.Time, error) {
	layouts := []string{
		DateTimeLayout,
		"2006-01-02",
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported datetime value %q", s)
}
