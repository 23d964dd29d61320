// Package session provides the runner that logs a reading session.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/reading"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Session distributes a reading session over its included days and upserts
// the daily ledger entries.
type Session struct {
	BookRef     string
	Days        []reading.Day
	TotalPages  int
	Notes       string
	ShowID      bool
	Persistence store.Persistence
}

func (n *Session) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not log, no persistence")
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
		return fmt.Errorf("can not log, unknown book %q", n.BookRef)
	}

	written, err := t.LogSession(tracker.Session{
		BookID:     b.ID,
		Days:       n.Days,
		TotalPages: n.TotalPages,
		Notes:      n.Notes,
	})
	if err != nil {
		return err
	}

	// The session may have promoted the book, so both blobs are saved.
	if err := n.Persistence.SaveLogs(t.Logs()); err != nil {
		return err
	}
	if err := n.Persistence.SaveBooks(t.Books()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(b.Title, len(written))

	p := color.New()
	f := color.New(color.Faint)
	for _, l := range written {
		_, _ = p.Printf("%s", l.Date)
		_, _ = f.Printf("  %d pages\n", l.PagesRead)
	}
	fmt.Println("")

	return nil
}
