// Package get provides runners that print the catalog and the ledger.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/calendar"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

type Get struct {
	ShowID      bool
	Logs        bool
	Status      book.Status
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
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

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Logs {
		n.printLogs(t, &pp)
		return nil
	}

	filtered := n.filtered(t.Books())
	pp.TitleWithCount("Books", len(filtered))
	totals := make(map[string]int, len(filtered))
	for _, b := range filtered {
		totals[b.ID] = t.TotalRead(b.ID)
	}
	pp.Books(totals, filtered...)
	return nil
}

func (n *Get) printLogs(t *tracker.Tracker, pp *printers.PrettyPrint) {
	grouped := calendar.ByDay(t.Logs())
	for _, key := range calendar.Keys(grouped) {
		day := grouped[key][0].Date
		pp.Day(day, calendar.DayEntries(day, t.Logs(), t.Books()))
	}
}

func (n *Get) filtered(all []*book.Book) []*book.Book {
	if n.Status == "" {
		return all
	}
	c := make([]*book.Book, 0, len(all))
	for _, b := range all {
		if b.Status == n.Status {
			c = append(c, b)
		}
	}
	return c
}
