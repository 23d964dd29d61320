package reading

import "encoding/json"

// Log records pages read for one book on one day. The ledger holds at most
// one Log per (BookID, Date) pair.
type Log struct {
	ID        string `json:"id"`
	BookID    string `json:"bookId"`
	Date      Day    `json:"date"`
	PagesRead int    `json:"pagesRead"`
	Notes     string `json:"notes,omitempty"`
}

func New(bookID string, date Day, pagesRead int, notes string) *Log {
	return &Log{
		BookID:    bookID,
		Date:      date,
		PagesRead: pagesRead,
		Notes:     notes,
	}
}

// MarshalList serialises a log collection blob.
func MarshalList(logs []*Log) ([]byte, error) {
	return json.MarshalIndent(logs, "", "  ")
}

// UnmarshalList deserialises a log collection blob.
func UnmarshalList(data []byte) ([]*Log, error) {
	if len(data) == 0 {
		return []*Log{}, nil
	}
	var logs []*Log
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, err
	}
	out := make([]*Log, 0, len(logs))
	for _, l := range logs {
		if l == nil {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
