// Package tracker owns the in-memory book catalog and reading ledger and
// the rules that keep them consistent.
package tracker

import (
	"strings"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/id"
	"tableflip.dev/shelf/pkg/reading"
)

// Tracker holds the current snapshot of books and logs. All mutations run
// to completion, including the completion pass, before any read observes
// the snapshot.
type Tracker struct {
	books []*book.Book
	logs  []*reading.Log
}

func New(books []*book.Book, logs []*reading.Log) *Tracker {
	if books == nil {
		books = []*book.Book{}
	}
	if logs == nil {
		logs = []*reading.Log{}
	}
	t := &Tracker{books: books, logs: logs}
	t.detectCompletion()
	return t
}

// Books returns the current catalog in storage order.
func (t *Tracker) Books() []*book.Book {
	return t.books
}

// Logs returns the current ledger in storage order.
func (t *Tracker) Logs() []*reading.Log {
	return t.logs
}

// AddBook assigns a fresh id, defaults the status and color, and appends.
func (t *Tracker) AddBook(b book.Book) *book.Book {
	b.ID = id.MustGenerate("book")
	if b.Status == "" {
		b.Status = book.StatusToRead
	}
	if !book.ValidColor(b.Color) {
		b.Color = book.PaletteColor(len(t.books))
	}
	added := &b
	t.books = append(t.books, added)
	t.detectCompletion()
	return added
}

// BookPatch carries the fields UpdateBook may change. Nil fields are left
// untouched.
type BookPatch struct {
	Title     *string
	Author    *string
	Category  *book.Category
	Status    *book.Status
	PageCount *int
	Color     *string
}

// UpdateBook merges the patch into the matching book. A missing id is a
// silent no-op.
func (t *Tracker) UpdateBook(bookID string, patch BookPatch) {
	b := t.bookByID(bookID)
	if b == nil {
		return
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.PageCount != nil {
		b.PageCount = *patch.PageCount
	}
	if patch.Color != nil {
		b.Color = *patch.Color
	}
	t.detectCompletion()
}

// SetStatus applies a manual status transition. Manual edits may move a
// book in any direction, including out of completed.
func (t *Tracker) SetStatus(bookID string, status book.Status) {
	s := status
	t.UpdateBook(bookID, BookPatch{Status: &s})
}

// DeleteBook removes the book and every log referencing it. No orphan log
// survives the mutation.
func (t *Tracker) DeleteBook(bookID string) {
	books := t.books[:0]
	for _, b := range t.books {
		if b.ID != bookID {
			books = append(books, b)
		}
	}
	t.books = books

	logs := t.logs[:0]
	for _, l := range t.logs {
		if l.BookID != bookID {
			logs = append(logs, l)
		}
	}
	t.logs = logs
	t.detectCompletion()
}

// DeleteLog removes a single log by id. A missing id is a silent no-op and
// deletion never demotes a completed book.
func (t *Tracker) DeleteLog(logID string) {
	logs := t.logs[:0]
	for _, l := range t.logs {
		if l.ID != logID {
			logs = append(logs, l)
		}
	}
	t.logs = logs
	t.detectCompletion()
}

// UpsertLog inserts or corrects the ledger entry for (bookID, day).
// A second log for the same book and day overwrites pages and notes while
// keeping the entry's identity; it never accumulates.
func (t *Tracker) UpsertLog(bookID string, day reading.Day, pagesRead int, notes string) *reading.Log {
	l := t.upsert(bookID, day, pagesRead, notes)
	t.detectCompletion()
	return l
}

func (t *Tracker) upsert(bookID string, day reading.Day, pagesRead int, notes string) *reading.Log {
	for _, l := range t.logs {
		if l.BookID == bookID && l.Date.Same(day) {
			l.PagesRead = pagesRead
			l.Notes = notes
			return l
		}
	}
	l := reading.New(bookID, day, pagesRead, notes)
	l.ID = id.MustGenerate("log")
	t.logs = append(t.logs, l)
	return l
}

// TotalRead sums pages read over every log for the book. It is recomputed
// from the ledger on each call, never cached.
func (t *Tracker) TotalRead(bookID string) int {
	total := 0
	for _, l := range t.logs {
		if l.BookID == bookID {
			total += l.PagesRead
		}
	}
	return total
}

// detectCompletion promotes books whose ledger total has reached their page
// count. The pass is idempotent and one-directional: it never demotes, and
// books with an untracked page count are exempt.
func (t *Tracker) detectCompletion() {
	for _, b := range t.books {
		if b.Status == book.StatusCompleted || b.PageCount <= 0 {
			continue
		}
		if t.TotalRead(b.ID) >= b.PageCount {
			b.Status = book.StatusCompleted
		}
	}
}

func (t *Tracker) bookByID(bookID string) *book.Book {
	for _, b := range t.books {
		if b.ID == bookID {
			return b
		}
	}
	return nil
}

// Resolve finds a book by exact id or, failing that, by case-insensitive
// title match.
func (t *Tracker) Resolve(ref string) (*book.Book, bool) {
	if b := t.bookByID(ref); b != nil {
		return b, true
	}
	for _, b := range t.books {
		if strings.EqualFold(b.Title, ref) {
			return b, true
		}
	}
	return nil, false
}
