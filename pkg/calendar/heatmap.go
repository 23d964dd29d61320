package calendar

import (
	"time"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/reading"
)

// EmptyColor fills heatmap cells for days with no reading.
const EmptyColor = "#f1f5f9"

// Cell is one day of the year heatmap.
type Cell struct {
	Day reading.Day
	// Color is the book color of the first log in the day's storage
	// order, or EmptyColor when the day is empty. Ties among multiple
	// books on one day break in favor of array order.
	Color string
	// Title names the book that won the color.
	Title string
	// Count is the number of resolvable logs on the day.
	Count int
	// Others is how many logs beyond the first share the day.
	Others int
}

// Heatmap resolves one cell per day of the year. Logs whose book has been
// deleted are invisible to the view.
func Heatmap(year int, logs []*reading.Log, books []*book.Book) []Cell {
	byID := Index(books)
	grouped := ByDay(logs)

	first := reading.NewDay(year, time.January, 1)
	cells := make([]Cell, 0, 366)
	for d := first; d.Year() == year; d = d.Next() {
		cell := Cell{Day: d, Color: EmptyColor}
		for _, l := range grouped[d.Key()] {
			b, ok := byID[l.BookID]
			if !ok {
				continue
			}
			if cell.Count == 0 {
				cell.Color = b.Color
				cell.Title = b.Title
			}
			cell.Count++
		}
		if cell.Count > 1 {
			cell.Others = cell.Count - 1
		}
		cells = append(cells, cell)
	}
	return cells
}

// Weeks lays heatmap cells out in Sunday-first week columns, padding the
// first and last with nils, for grid rendering.
func Weeks(cells []Cell) [][]*Cell {
	weeks := make([][]*Cell, 0, 54)
	week := make([]*Cell, 0, 7)

	if len(cells) > 0 {
		for i := time.Sunday; i < cells[0].Day.Weekday(); i++ {
			week = append(week, nil)
		}
	}
	for i := range cells {
		week = append(week, &cells[i])
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]*Cell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
