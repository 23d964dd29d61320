// Package status provides the runner for manual status transitions.
package status

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Status applies a manual status change to a book. Manual edits may move a
// book in any direction, including out of completed.
type Status struct {
	BookRef     string
	Status      book.Status
	ShowID      bool
	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set status, no persistence")
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

	b, ok := t.Resolve(n.BookRef)
	if !ok {
		return fmt.Errorf("can not set status, unknown book %q", n.BookRef)
	}
	t.SetStatus(b.ID, n.Status)

	if err := n.Persistence.SaveBooks(t.Books()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(b.Title)
	totals := map[string]int{b.ID: t.TotalRead(b.ID)}
	pp.Books(totals, b)

	return nil
}
