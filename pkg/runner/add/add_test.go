package add

import (
	"context"
	"testing"

	"tableflip.dev/shelf/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func TestAddRejectsNegativePageCount(t *testing.T) {
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	n := &Add{Title: "Dune", PageCount: -10, Persistence: p}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error for negative page count")
	}
	books, err := p.LoadBooks()
	if err != nil {
		t.Fatalf("load books: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("rejected add must not persist, got %d books", len(books))
	}
}

func TestAddRequiresPersistence(t *testing.T) {
	n := &Add{Title: "Dune"}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
