// Package add provides the runner that adds a book to the catalog.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Add records a new book and reprints the catalog.
type Add struct {
	Title       string
	Author      string
	Category    book.Category
	PageCount   int
	Color       string
	ShowID      bool
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Title == "" {
		return errors.New("can not add, a title is required")
	}
	if n.Color != "" && !book.ValidColor(n.Color) {
		return fmt.Errorf("can not add, %q is not a #rrggbb color", n.Color)
	}
	if n.PageCount < 0 {
		return fmt.Errorf("can not add, page count %d is negative", n.PageCount)
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
	t.AddBook(book.Book{
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
	pp.TitleWithCount("Books", len(t.Books()))
	totals := make(map[string]int, len(t.Books()))
	for _, b := range t.Books() {
		totals[b.ID] = t.TotalRead(b.ID)
	}
	pp.Books(totals, t.Books()...)

	return nil
}
