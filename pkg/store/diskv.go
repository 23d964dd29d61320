package store

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/reading"
)

const (
	booksKey = "books"
	logsKey  = "logs"
)

// Persistence defines the persistence contract: two independently loaded
// and saved collections, each written as a full-replace blob.
type Persistence interface {
	LoadBooks() ([]*book.Book, error)
	SaveBooks(books []*book.Book) error
	LoadLogs() ([]*reading.Log, error)
	SaveLogs(logs []*reading.Log) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) LoadBooks() ([]*book.Book, error) {
	data, err := p.read(booksKey)
	if err != nil {
		return nil, err
	}
	books, err := book.UnmarshalList(data)
	if err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", booksKey, err)
	}
	return books, nil
}

func (p *persistence) SaveBooks(books []*book.Book) error {
	data, err := book.MarshalList(books)
	if err != nil {
		return err
	}
	return p.d.Write(booksKey, data)
}

func (p *persistence) LoadLogs() ([]*reading.Log, error) {
	data, err := p.read(logsKey)
	if err != nil {
		return nil, err
	}
	logs, err := reading.UnmarshalList(data)
	if err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", logsKey, err)
	}
	return logs, nil
}

func (p *persistence) SaveLogs(logs []*reading.Log) error {
	data, err := reading.MarshalList(logs)
	if err != nil {
		return err
	}
	return p.d.Write(logsKey, data)
}

// read returns nil for a key that was never written; a fresh store starts
// with both collections empty.
func (p *persistence) read(key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, nil
	}
	return p.d.Read(key)
}
