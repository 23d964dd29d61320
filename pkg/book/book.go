package book

import "encoding/json"

// Book is a catalog entry. PageCount of zero means the length is untracked
// and the book is never auto-completed.
type Book struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author,omitempty"`
	Category  Category `json:"category,omitempty"`
	Status    Status   `json:"status"`
	PageCount int      `json:"pageCount"`
	Color     string   `json:"color,omitempty"`
}

func New(title, author string, category Category, pageCount int) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		Category:  category,
		Status:    StatusToRead,
		PageCount: pageCount,
	}
}

// MarshalList serialises a book collection blob.
func MarshalList(books []*Book) ([]byte, error) {
	return json.MarshalIndent(books, "", "  ")
}

// UnmarshalList deserialises a book collection blob, normalising missing
// statuses to the default.
func UnmarshalList(data []byte) ([]*Book, error) {
	if len(data) == 0 {
		return []*Book{}, nil
	}
	var books []*Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	out := make([]*Book, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		if b.Status == "" {
			b.Status = StatusToRead
		}
		out = append(out, b)
	}
	return out, nil
}
