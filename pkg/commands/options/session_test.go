package options

import (
	"errors"
	"testing"

	"tableflip.dev/shelf/pkg/reading"
)

func TestIncludedDaysSingle(t *testing.T) {
	o := &SessionOptions{OnString: "2024-03-05"}
	days, err := o.IncludedDays()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 || days[0].Key() != "2024-03-05" {
		t.Fatalf("unexpected days: %v", days)
	}
}

func TestIncludedDaysRangeWithSkips(t *testing.T) {
	o := &SessionOptions{
		FromString: "2024-03-01",
		ToString:   "2024-03-05",
		Skip:       []string{"2024-03-03"},
	}
	days, err := o.IncludedDays()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 4 {
		t.Fatalf("expected 4 included days, got %d", len(days))
	}
	for _, d := range days {
		if d.Key() == "2024-03-03" {
			t.Fatalf("skipped day included")
		}
	}
}

func TestIncludedDaysInvalidRange(t *testing.T) {
	o := &SessionOptions{FromString: "2024-03-05", ToString: "2024-03-01"}
	if _, err := o.IncludedDays(); !errors.Is(err, reading.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestIncludedDaysBadDate(t *testing.T) {
	o := &SessionOptions{OnString: "3/5/2024"}
	if _, err := o.IncludedDays(); err == nil {
		t.Fatalf("expected parse error")
	}
}
