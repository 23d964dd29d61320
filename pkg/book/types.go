// Package book defines the catalog model for tracked books.
package book

import (
	"fmt"
	"strings"
)

// Status identifies where a book sits in its reading lifecycle.
type Status string

const (
	// StatusToRead is the default status for a freshly added book.
	StatusToRead Status = "toread"
	// StatusReading marks a book currently being read.
	StatusReading Status = "reading"
	// StatusCompleted marks a finished book. Completion is sticky: only a
	// manual status change moves a book out of it.
	StatusCompleted Status = "completed"
)

// AllStatuses returns the list of supported statuses.
func AllStatuses() []Status {
	return []Status{
		StatusToRead,
		StatusReading,
		StatusCompleted,
	}
}

// ParseStatus converts a string to a Status or returns an error for unknown
// values. Empty input defaults to StatusToRead.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusToRead, nil
	}
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StatusToRead, fmt.Errorf("book: unknown status %q", raw)
}

// Category splits the catalog into academic and non-academic shelves.
type Category string

const (
	CategoryAcademic    Category = "academic"
	CategoryNonAcademic Category = "non-academic"
)

// AllCategories returns the list of supported categories.
func AllCategories() []Category {
	return []Category{
		CategoryAcademic,
		CategoryNonAcademic,
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Empty input defaults to CategoryNonAcademic.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CategoryNonAcademic, nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return CategoryNonAcademic, fmt.Errorf("book: unknown category %q", raw)
}
