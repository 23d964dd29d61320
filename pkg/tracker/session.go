package tracker

import (
	"errors"

	"tableflip.dev/shelf/pkg/reading"
)

var (
	// ErrNoDaysSelected rejects a session with an empty included-day set.
	ErrNoDaysSelected = errors.New("tracker: no days selected")
	// ErrNegativePages rejects a session with a negative page total.
	ErrNegativePages = errors.New("tracker: total pages must not be negative")
	// ErrUnknownBook rejects a session for a book that is not in the catalog.
	ErrUnknownBook = errors.New("tracker: unknown book")
)

// Session describes a multi-day reading session to be split into daily
// ledger entries. Days is the caller-curated included-day set; days inside
// the original range may have been deselected.
type Session struct {
	BookID     string
	Days       []reading.Day
	TotalPages int
	Notes      string
}

// Distribute splits total pages across n days: every day gets the floor
// share and the earliest days absorb the remainder, one page each. The
// allocations always sum to total and differ by at most one.
func Distribute(total, n int) []int {
	if n <= 0 {
		return nil
	}
	base := total / n
	remainder := total % n
	alloc := make([]int, n)
	for i := range alloc {
		alloc[i] = base
		if i < remainder {
			alloc[i]++
		}
	}
	return alloc
}

// LogSession validates the session, distributes its pages over the included
// days oldest-first, and upserts one ledger entry per day. Validation
// failures leave the snapshot untouched.
func (t *Tracker) LogSession(s Session) ([]*reading.Log, error) {
	b, ok := t.Resolve(s.BookID)
	if !ok {
		return nil, ErrUnknownBook
	}
	if s.TotalPages < 0 {
		return nil, ErrNegativePages
	}

	days := dedupeDays(s.Days)
	if len(days) == 0 {
		return nil, ErrNoDaysSelected
	}
	reading.SortDays(days)

	alloc := Distribute(s.TotalPages, len(days))
	logs := make([]*reading.Log, 0, len(days))
	for i, day := range days {
		logs = append(logs, t.upsert(b.ID, day, alloc[i], s.Notes))
	}
	t.detectCompletion()
	return logs, nil
}

func dedupeDays(days []reading.Day) []reading.Day {
	seen := make(map[string]bool, len(days))
	out := make([]reading.Day, 0, len(days))
	for _, d := range days {
		if d.IsZero() || seen[d.Key()] {
			continue
		}
		seen[d.Key()] = true
		out = append(out, d)
	}
	return out
}
