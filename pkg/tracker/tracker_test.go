package tracker

import (
	"testing"
	"time"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/reading"
)

func newBook(t *testing.T, tr *Tracker, title string, pages int) *book.Book {
	t.Helper()
	return tr.AddBook(book.Book{Title: title, PageCount: pages})
}

func TestAddBookDefaults(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Dune", 412)
	if b.ID == "" {
		t.Fatalf("expected a fresh id")
	}
	if b.Status != book.StatusToRead {
		t.Fatalf("expected toread default, got %q", b.Status)
	}
	if !book.ValidColor(b.Color) {
		t.Fatalf("expected a palette color, got %q", b.Color)
	}
	if len(tr.Books()) != 1 {
		t.Fatalf("expected 1 book, got %d", len(tr.Books()))
	}
}

func TestUpsertOverwrites(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Dune", 0)
	day := reading.NewDay(2024, time.January, 1)

	first := tr.UpsertLog(b.ID, day, 5, "")
	second := tr.UpsertLog(b.ID, day, 8, "corrected")

	if len(tr.Logs()) != 1 {
		t.Fatalf("expected exactly one log for the day, got %d", len(tr.Logs()))
	}
	if second.ID != first.ID {
		t.Fatalf("upsert must preserve identity: %s vs %s", first.ID, second.ID)
	}
	if second.PagesRead != 8 {
		t.Fatalf("expected overwrite to 8, got %d", second.PagesRead)
	}
	if second.Notes != "corrected" {
		t.Fatalf("expected notes replaced, got %q", second.Notes)
	}
}

func TestUpsertDistinctDaysAndBooks(t *testing.T) {
	tr := New(nil, nil)
	a := newBook(t, tr, "A", 0)
	b := newBook(t, tr, "B", 0)
	day := reading.NewDay(2024, time.January, 1)

	tr.UpsertLog(a.ID, day, 5, "")
	tr.UpsertLog(b.ID, day, 5, "")
	tr.UpsertLog(a.ID, day.Next(), 5, "")

	if len(tr.Logs()) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(tr.Logs()))
	}
}

func TestCompletionThreshold(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Dune", 100)

	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 99, "")
	if b.Status == book.StatusCompleted {
		t.Fatalf("should not complete below the page count")
	}

	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 2), 1, "")
	if b.Status != book.StatusCompleted {
		t.Fatalf("expected completion at the threshold, got %q", b.Status)
	}
}

func TestCompletionMonotonic(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Dune", 10)
	l := tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 10, "")
	if b.Status != book.StatusCompleted {
		t.Fatalf("expected completed, got %q", b.Status)
	}

	tr.DeleteLog(l.ID)
	if b.Status != book.StatusCompleted {
		t.Fatalf("log deletion must not demote, got %q", b.Status)
	}

	title := "Dune (revised)"
	tr.UpdateBook(b.ID, BookPatch{Title: &title})
	if b.Status != book.StatusCompleted {
		t.Fatalf("book edit must not demote, got %q", b.Status)
	}
}

func TestManualStatusOverridesCompletion(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Dune", 10)
	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 10, "")

	tr.SetStatus(b.ID, book.StatusReading)
	if b.Status != book.StatusCompleted {
		t.Fatalf("detector should immediately re-promote an eligible book, got %q", b.Status)
	}

	tr.DeleteLog(tr.Logs()[0].ID)
	tr.SetStatus(b.ID, book.StatusReading)
	if b.Status != book.StatusReading {
		t.Fatalf("manual demotion should stand once the ledger is below threshold, got %q", b.Status)
	}
}

func TestUntrackedPageCountNeverCompletes(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Zine", 0)
	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 500, "")
	if b.Status != book.StatusToRead {
		t.Fatalf("untracked length must never auto-complete, got %q", b.Status)
	}
}

func TestDetectorIdempotent(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "Dune", 10)
	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 10, "")

	before := *b
	tr.detectCompletion()
	if *b != before {
		t.Fatalf("second pass on an unchanged snapshot must be a no-op")
	}
}

func TestDeleteBookCascades(t *testing.T) {
	tr := New(nil, nil)
	a := newBook(t, tr, "A", 0)
	b := newBook(t, tr, "B", 0)
	tr.UpsertLog(a.ID, reading.NewDay(2024, time.January, 1), 5, "")
	tr.UpsertLog(a.ID, reading.NewDay(2024, time.January, 2), 5, "")
	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 5, "")

	tr.DeleteBook(a.ID)

	if len(tr.Books()) != 1 {
		t.Fatalf("expected 1 book, got %d", len(tr.Books()))
	}
	for _, l := range tr.Logs() {
		if l.BookID == a.ID {
			t.Fatalf("orphan log survived cascade: %s", l.ID)
		}
	}
	if len(tr.Logs()) != 1 {
		t.Fatalf("expected 1 log to survive, got %d", len(tr.Logs()))
	}
}

func TestSilentNoOpOnMissingIDs(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "A", 0)
	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 5, "")

	title := "ignored"
	tr.UpdateBook("book-missing", BookPatch{Title: &title})
	tr.DeleteBook("book-missing")
	tr.DeleteLog("log-missing")

	if len(tr.Books()) != 1 || len(tr.Logs()) != 1 {
		t.Fatalf("missing ids must be silent no-ops")
	}
	if b.Title != "A" {
		t.Fatalf("patch must not leak onto other books")
	}
}

func TestTotalReadRecomputed(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "A", 0)
	tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 1), 5, "")
	l := tr.UpsertLog(b.ID, reading.NewDay(2024, time.January, 2), 7, "")
	if got := tr.TotalRead(b.ID); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	tr.DeleteLog(l.ID)
	if got := tr.TotalRead(b.ID); got != 5 {
		t.Fatalf("expected 5 after deletion, got %d", got)
	}
}

func TestResolve(t *testing.T) {
	tr := New(nil, nil)
	b := newBook(t, tr, "The Left Hand of Darkness", 0)

	if got, ok := tr.Resolve(b.ID); !ok || got != b {
		t.Fatalf("expected resolve by id")
	}
	if got, ok := tr.Resolve("the left hand of darkness"); !ok || got != b {
		t.Fatalf("expected case-insensitive title resolve")
	}
	if _, ok := tr.Resolve("nope"); ok {
		t.Fatalf("expected miss for unknown ref")
	}
}
