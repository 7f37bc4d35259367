package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format of a Date.
const Layout = "2006-01-02"

// Date is a calendar date without time of day, encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	return Date{Time: t}, nil
}

// FromTime drops the time of day, keeping the calendar date in t's location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
