// Package backup provides the export and import runners.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Export writes the current snapshot as a JSON document. An empty Path
// writes to stdout.
type Export struct {
	Path        string
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
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

	doc := t.Export(time.Now())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if n.Path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Path, data, 0o644); err != nil {
		return fmt.Errorf("can not export: %w", err)
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("exported %d books and %d logs to %s\n", len(doc.Books), len(doc.Logs), n.Path)
	return nil
}

// Import replaces the stored collections from a document file. Collections
// absent from the document are left untouched.
type Import struct {
	Path        string
	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	if n.Path == "" {
		return errors.New("can not import, a file is required")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("can not import: %w", err)
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

	result, err := t.Import(data)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	if result.Empty() {
		_, _ = f.Println("nothing to import")
		return nil
	}
	// The detector may promote books off the imported ledger, so both
	// blobs are saved whenever anything was replaced.
	if err := n.Persistence.SaveBooks(t.Books()); err != nil {
		return err
	}
	if err := n.Persistence.SaveLogs(t.Logs()); err != nil {
		return err
	}
	_, _ = f.Printf("imported %d books and %d logs\n", len(t.Books()), len(t.Logs()))
	return nil
}
