// Package caldate implements a calendar date exchanged on the wire as
// dd-Mmm-yyyy with Portuguese month abbreviations, e.g. "02-Fev-2001".
package caldate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is also accepted on input.
const ISOLayout = "2006-01-02"

var monthAbbrev = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Date is a calendar date without time of day or zone. The zero value is the
// unset date.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime keeps only the calendar date of t as seen in t's location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d-%s-%04d", d.t.Day(), monthAbbrev[d.t.Month()-1], d.t.Year())
}

// Parse reads dd-Mmm-yyyy (month matched case-insensitively, an optional
// trailing dot allowed) or yyyy-mm-dd. Dates that do not exist on the
// calendar are rejected.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(ISOLayout, s); err == nil {
		return FromTime(t), nil
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: expected dd-Mmm-yyyy", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 {
		return Date{}, fmt.Errorf("invalid day in date %q", s)
	}
	month, ok := parseMonth(parts[1])
	if !ok {
		return Date{}, fmt.Errorf("invalid month %q in date %q", parts[1], s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) != 4 {
		return Date{}, fmt.Errorf("invalid year in date %q", s)
	}

	d := New(year, month, day)
	// time.Date normalizes overflow (32-Jan -> 01-Fev); reject it.
	if d.t.Day() != day || d.t.Month() != month || d.t.Year() != year {
		return Date{}, fmt.Errorf("date %q does not exist", s)
	}
	return d, nil
}

func parseMonth(s string) (time.Month, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	for i, abbr := range monthAbbrev {
		if strings.EqualFold(s, abbr) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
