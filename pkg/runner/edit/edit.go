// Package edit provides the runner that patches book fields.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Edit merges the set fields into a book. Unset fields stay as they are.
type Edit struct {
	BookRef     string
	Title       *string
	Author      *string
	Category    *book.Category
	PageCount   *int
	Color       *string
	ShowID      bool
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	if n.Color != nil && !book.ValidColor(*n.Color) {
		return fmt.Errorf("can not edit, %q is not a #rrggbb color", *n.Color)
	}
	if n.PageCount != nil && *n.PageCount < 0 {
		return fmt.Errorf("can not edit, page count %d is negative", *n.PageCount)
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
		return fmt.Errorf("can not edit, unknown book %q", n.BookRef)
	}
	t.UpdateBook(b.ID, tracker.BookPatch{
		Title:     n.Title,
		Author:    n.Author,
		Category:  n.Category,
		PageCount: n.PageCount,
		Color:     n.Color,
	})

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
