// Package reading defines the ledger of per-day reading activity.
package reading

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

const layoutISO = "2006-01-02"

// RangeCap bounds how many days a session range may expand to for per-day
// selection. The distributor itself handles any included-day set; this guard
// only protects the range expansion at the edge.
const RangeCap = 60

var (
	// ErrInvalidRange is returned when a range start falls after its end.
	ErrInvalidRange = errors.New("reading: range start is after end")
	// ErrRangeTooLong is returned when a range expands past RangeCap days.
	ErrRangeTooLong = fmt.Errorf("reading: range longer than %d days", RangeCap)
)

// Day is a timezone-naive calendar-day key. It marshals as YYYY-MM-DD.
type Day struct {
	time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar day.
func Today() Day {
	now := time.Now()
	return NewDay(now.Date())
}

// DayOf truncates a time to its calendar day.
func DayOf(t time.Time) Day {
	return NewDay(t.Date())
}

// ParseDay parses a YYYY-MM-DD key.
func ParseDay(v string) (Day, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// Key returns the YYYY-MM-DD form used across storage and export.
func (d Day) Key() string {
	return d.Format(layoutISO)
}

func (d Day) String() string {
	return d.Key()
}

func (d Day) Same(then Day) bool {
	return d.Key() == then.Key()
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return DayOf(d.AddDate(0, 0, 1))
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Key())), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var key string
	if err := json.Unmarshal(b, &key); err != nil {
		return err
	}
	if key == "" {
		d.Time = time.Time{}
		return nil
	}
	day, err := ParseDay(key)
	if err != nil {
		return err
	}
	d.Time = day.Time
	return nil
}

// Range expands an inclusive [start, end] into its days, oldest first.
func Range(start, end Day) ([]Day, error) {
	if start.After(end.Time) {
		return nil, ErrInvalidRange
	}
	days := make([]Day, 0, RangeCap)
	for d := start; !d.After(end.Time); d = d.Next() {
		if len(days) >= RangeCap {
			return nil, ErrRangeTooLong
		}
		days = append(days, d)
	}
	return days, nil
}

// SortDays orders days oldest first.
func SortDays(days []Day) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j].Time)
	})
}
