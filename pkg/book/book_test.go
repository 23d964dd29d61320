package book

import "testing"

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Reading ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusReading {
		t.Fatalf("expected reading, got %q", s)
	}

	s, err = ParseStatus("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusToRead {
		t.Fatalf("empty status should default to toread, got %q", s)
	}

	if _, err := ParseStatus("shelved"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("academic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != CategoryAcademic {
		t.Fatalf("expected academic, got %q", c)
	}
	if _, err := ParseCategory("fiction"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestValidColor(t *testing.T) {
	if !ValidColor("#3b82f6") {
		t.Fatalf("expected #3b82f6 to be valid")
	}
	if ValidColor("blue") {
		t.Fatalf("expected named color to be rejected")
	}
	if ValidColor("") {
		t.Fatalf("expected empty color to be rejected")
	}
}

func TestPaletteColorWraps(t *testing.T) {
	if PaletteColor(0) != PaletteColor(len(presetColors)) {
		t.Fatalf("palette should wrap around")
	}
	if !ValidColor(PaletteColor(5)) {
		t.Fatalf("palette colors should be valid hex")
	}
}

func TestUnmarshalListDefaultsStatus(t *testing.T) {
	data := []byte(`[{"id":"book-1","title":"Dune","pageCount":412}]`)
	books, err := UnmarshalList(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	if books[0].Status != StatusToRead {
		t.Fatalf("expected defaulted status, got %q", books[0].Status)
	}
}

func TestUnmarshalListEmpty(t *testing.T) {
	books, err := UnmarshalList(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected empty collection, got %d", len(books))
	}
}
