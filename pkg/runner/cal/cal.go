// Package cal provides the calendar view runners.
package cal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/calendar"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/reading"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Calendar renders the day, week, or month view around On.
type Calendar struct {
	Day         bool
	Week        bool
	Month       bool
	On          reading.Day
	ShowID      bool
	Persistence store.Persistence
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}

	books, err := n.Persistence.LoadBooks()
	if err != nil {
		return err
	}
	logs, err := n.Persistence.LoadLogs()
	if err != nil {
		return err
	}
	t := tracker.New(books, logs)

	on := n.On
	if on.IsZero() {
		on = reading.Today()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch {
	case n.Week:
		pp.Title(on.Format("Week of January 2, 2006"))
		pp.Week(calendar.WeekOf(on), func(day reading.Day) []calendar.Entry {
			return calendar.DayEntries(day, t.Logs(), t.Books())
		})
	case n.Month:
		pp.Month(on.Time, t.Logs()...)
	default:
		pp.Day(on, calendar.DayEntries(on, t.Logs(), t.Books()))
	}

	return nil
}
