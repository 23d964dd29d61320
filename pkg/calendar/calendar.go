// Package calendar builds read-side views over a books/logs snapshot.
package calendar

import (
	"sort"
	"time"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/reading"
)

// Entry is a log resolved to its book for display.
type Entry struct {
	Log  *reading.Log
	Book *book.Book
}

// Index maps book ids to books for view resolution.
func Index(books []*book.Book) map[string]*book.Book {
	byID := make(map[string]*book.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	return byID
}

// DayEntries resolves every log on the given day against the catalog, in
// the ledger's storage order. Logs whose book is gone are dropped, never
// shown as orphans.
func DayEntries(day reading.Day, logs []*reading.Log, books []*book.Book) []Entry {
	byID := Index(books)
	entries := make([]Entry, 0)
	for _, l := range logs {
		if !l.Date.Same(day) {
			continue
		}
		b, ok := byID[l.BookID]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Log: l, Book: b})
	}
	return entries
}

// ByDay groups logs by their date key, preserving ledger order within each
// day. Days without logs have no key; callers render those cells empty.
func ByDay(logs []*reading.Log) map[string][]*reading.Log {
	grouped := make(map[string][]*reading.Log)
	for _, l := range logs {
		key := l.Date.Key()
		grouped[key] = append(grouped[key], l)
	}
	return grouped
}

// Keys returns the grouped date keys oldest first.
func Keys(grouped map[string][]*reading.Log) []string {
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// WeekOf returns the seven days of the week containing day, Sunday first.
func WeekOf(day reading.Day) []reading.Day {
	start := reading.DayOf(day.AddDate(0, 0, -int(day.Weekday())))
	week := make([]reading.Day, 0, 7)
	for d, i := start, 0; i < 7; d, i = d.Next(), i+1 {
		week = append(week, d)
	}
	return week
}

// MonthOf returns every day of the month containing day.
func MonthOf(day reading.Day) []reading.Day {
	first := reading.NewDay(day.Year(), day.Month(), 1)
	days := make([]reading.Day, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday the month containing then starts on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
