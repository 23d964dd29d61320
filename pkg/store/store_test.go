package store

import (
	"testing"
	"time"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/reading"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func TestFreshStoreIsEmpty(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	books, err := p.LoadBooks()
	if err != nil {
		t.Fatalf("load books: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(books))
	}
	logs, err := p.LoadLogs()
	if err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected empty ledger, got %d", len(logs))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	books := []*book.Book{
		{ID: "book-1", Title: "Dune", Status: book.StatusReading, PageCount: 412, Color: "#3b82f6"},
	}
	logs := []*reading.Log{
		{ID: "log-1", BookID: "book-1", Date: reading.NewDay(2024, time.January, 1), PagesRead: 20, Notes: "slow start"},
	}
	if err := p.SaveBooks(books); err != nil {
		t.Fatalf("save books: %v", err)
	}
	if err := p.SaveLogs(logs); err != nil {
		t.Fatalf("save logs: %v", err)
	}

	// A second Persistence over the same path sees the saved blobs.
	p2, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	gotBooks, err := p2.LoadBooks()
	if err != nil {
		t.Fatalf("load books: %v", err)
	}
	if len(gotBooks) != 1 || gotBooks[0].Title != "Dune" {
		t.Fatalf("unexpected books: %+v", gotBooks)
	}
	gotLogs, err := p2.LoadLogs()
	if err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(gotLogs) != 1 || !gotLogs[0].Date.Same(logs[0].Date) {
		t.Fatalf("unexpected logs: %+v", gotLogs)
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.SaveBooks([]*book.Book{{ID: "book-1", Title: "A"}, {ID: "book-2", Title: "B"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveBooks([]*book.Book{{ID: "book-3", Title: "C"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	books, err := p.LoadBooks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(books) != 1 || books[0].ID != "book-3" {
		t.Fatalf("save must replace the blob, got %+v", books)
	}
}
