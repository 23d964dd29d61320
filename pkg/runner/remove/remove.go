// Package remove provides runners that delete books and logs.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Remove deletes a book (cascading its logs) or a single log. Missing ids
// are harmless: double-deletes and stale references are silent no-ops.
type Remove struct {
	BookRef     string
	LogID       string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	if n.BookRef == "" && n.LogID == "" {
		return errors.New("can not delete, nothing selected")
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

	f := color.New(color.Faint)

	if n.BookRef != "" {
		if b, ok := t.Resolve(n.BookRef); ok {
			t.DeleteBook(b.ID)
			_, _ = f.Printf("deleted %q and its logs\n", b.Title)
		} else {
			_, _ = f.Printf("nothing to delete for %q\n", n.BookRef)
		}
	}
	if n.LogID != "" {
		before := len(t.Logs())
		t.DeleteLog(n.LogID)
		if len(t.Logs()) == before {
			_, _ = f.Printf("nothing to delete for %q\n", n.LogID)
		} else {
			_, _ = f.Printf("deleted log %s\n", n.LogID)
		}
	}

	if err := n.Persistence.SaveBooks(t.Books()); err != nil {
		return err
	}
	if err := n.Persistence.SaveLogs(t.Logs()); err != nil {
		return err
	}
	fmt.Println("")

	return nil
}
