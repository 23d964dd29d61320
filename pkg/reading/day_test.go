package reading

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Key() != "2024-01-01" {
		t.Fatalf("unexpected key: %s", d.Key())
	}
	if _, err := ParseDay("01/02/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestDayJSONRoundTrip(t *testing.T) {
	l := New("book-1", NewDay(2024, time.March, 5), 12, "")
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Log
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Date.Same(l.Date) {
		t.Fatalf("expected %s, got %s", l.Date, got.Date)
	}
}

func TestRangeInclusive(t *testing.T) {
	days, err := Range(NewDay(2024, time.January, 30), NewDay(2024, time.February, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	if days[0].Key() != "2024-01-30" || days[3].Key() != "2024-02-02" {
		t.Fatalf("unexpected bounds: %s .. %s", days[0], days[3])
	}
}

func TestRangeSingleDay(t *testing.T) {
	d := NewDay(2024, time.June, 10)
	days, err := Range(d, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 || !days[0].Same(d) {
		t.Fatalf("expected single day range, got %v", days)
	}
}

func TestRangeInvalid(t *testing.T) {
	_, err := Range(NewDay(2024, time.May, 2), NewDay(2024, time.May, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRangeCap(t *testing.T) {
	start := NewDay(2024, time.January, 1)
	end := DayOf(start.AddDate(0, 0, RangeCap))
	if _, err := Range(start, end); !errors.Is(err, ErrRangeTooLong) {
		t.Fatalf("expected ErrRangeTooLong, got %v", err)
	}
	end = DayOf(start.AddDate(0, 0, RangeCap-1))
	if _, err := Range(start, end); err != nil {
		t.Fatalf("range at cap should pass, got %v", err)
	}
}

func TestSortDays(t *testing.T) {
	days := []Day{
		NewDay(2024, time.March, 3),
		NewDay(2024, time.March, 1),
		NewDay(2024, time.March, 2),
	}
	SortDays(days)
	if days[0].Key() != "2024-03-01" || days[2].Key() != "2024-03-03" {
		t.Fatalf("unexpected order: %v", days)
	}
}
