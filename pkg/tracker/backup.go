package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/reading"
)

// DocumentVersion is the current export document version.
const DocumentVersion = 1

// Document is the export/import payload: both collections plus provenance.
type Document struct {
	Books      []*book.Book   `json:"books"`
	Logs       []*reading.Log `json:"logs"`
	ExportedAt time.Time      `json:"exportedAt"`
	Version    int            `json:"version"`
}

// Export captures the current snapshot as a document.
func (t *Tracker) Export(now time.Time) Document {
	return Document{
		Books:      t.books,
		Logs:       t.logs,
		ExportedAt: now,
		Version:    DocumentVersion,
	}
}

// ImportResult reports which collections an import actually replaced.
type ImportResult struct {
	BooksReplaced bool
	LogsReplaced  bool
}

// Empty reports that the payload carried nothing importable.
func (r ImportResult) Empty() bool {
	return !r.BooksReplaced && !r.LogsReplaced
}

// Import replaces each collection wholesale when the payload carries it as
// an array. A field that is absent or not array-typed leaves that
// collection untouched; only invalid JSON fails the import.
func (t *Tracker) Import(data []byte) (ImportResult, error) {
	var raw struct {
		Books json.RawMessage `json:"books"`
		Logs  json.RawMessage `json:"logs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, fmt.Errorf("tracker: parse import: %w", err)
	}

	var result ImportResult
	if isArray(raw.Books) {
		if books, err := book.UnmarshalList(raw.Books); err == nil {
			t.books = books
			result.BooksReplaced = true
		}
	}
	if isArray(raw.Logs) {
		if logs, err := reading.UnmarshalList(raw.Logs); err == nil {
			t.logs = logs
			result.LogsReplaced = true
		}
	}
	if !result.Empty() {
		t.detectCompletion()
	}
	return result, nil
}

// isArray reports whether the raw token is a JSON array. A null or scalar
// token would unmarshal into a nil slice without error, so the check happens
// before decoding.
func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
