package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/calendar"
	"tableflip.dev/shelf/pkg/reading"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("book-V1StGXR8_Z5jdHi6B-myT  "))
)

const notesWidth = 60

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Books renders the catalog as a table, one row per book in storage order.
func (pp *PrettyPrint) Books(totals map[string]int, books ...*book.Book) {
	if len(books) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "TITLE", "AUTHOR", "CATEGORY", "STATUS", "PROGRESS")
	} else {
		tbl.AddRow("TITLE", "AUTHOR", "CATEGORY", "STATUS", "PROGRESS")
	}
	for _, b := range books {
		progress := "-"
		if b.PageCount > 0 {
			progress = fmt.Sprintf("%d/%d", totals[b.ID], b.PageCount)
		} else if totals[b.ID] > 0 {
			progress = fmt.Sprintf("%d", totals[b.ID])
		}
		if pp.ShowID {
			tbl.AddRow(b.ID, b.Title, b.Author, string(b.Category), statusLabel(b.Status), progress)
		} else {
			tbl.AddRow(b.Title, b.Author, string(b.Category), statusLabel(b.Status), progress)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Day renders every resolved log for one day.
func (pp *PrettyPrint) Day(day reading.Day, entries []calendar.Entry) {
	pp.TitleWithCount(day.Format("Monday, January 2, 2006"), len(entries))

	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.Log.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(e.Log.ID))))
		}
		_, _ = t.Printf("%s", e.Book.Title)
		if e.Log.PagesRead > 0 {
			_, _ = f.Printf(" - %d pages", e.Log.PagesRead)
		}
		_, _ = t.Println("")
		if e.Log.Notes != "" {
			for _, line := range strings.Split(wordwrap.String(e.Log.Notes, notesWidth), "\n") {
				if pp.ShowID {
					_, _ = f.Print(spacing)
				}
				_, _ = f.Printf("  %s\n", line)
			}
		}
	}
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func statusLabel(s book.Status) string {
	switch s {
	case book.StatusCompleted:
		return color.GreenString(string(s))
	case book.StatusReading:
		return color.YellowString(string(s))
	default:
		return color.New(color.Faint).Sprint(string(s))
	}
}
