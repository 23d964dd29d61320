package printers

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/shelf/pkg/calendar"
	"tableflip.dev/shelf/pkg/reading"
)

var weekdayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// Heatmap prints one year of reading as a color grid, one column per week.
// Cell colors are the book colors resolved by the aggregator. Terminals
// without color support fall back to the month-count grids.
func (pp *PrettyPrint) Heatmap(year int, cells []calendar.Cell) {
	if !heatmapCapable() {
		pp.heatmapFallback(year, cells)
		return
	}

	weeks := calendar.Weeks(cells)
	blank := lipgloss.NewStyle()

	f := color.New(color.Faint)

	for row := 0; row < 7; row++ {
		_, _ = f.Printf("%4s ", weekdayLabels[row])
		for _, week := range weeks {
			cell := week[row]
			if cell == nil {
				fmt.Print(blank.Render("  "))
				continue
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color(cell.Color))
			fmt.Print(style.Render("  "))
		}
		fmt.Println("")
	}
	fmt.Println("")

	pp.heatmapBusyDays(cells)
}

// heatmapBusyDays lists days shared by more than one book; the grid can
// only show the first book's color.
func (pp *PrettyPrint) heatmapBusyDays(cells []calendar.Cell) {
	f := color.New(color.Faint)
	t := color.New()

	printed := false
	for _, cell := range cells {
		if cell.Others == 0 {
			continue
		}
		if !printed {
			_, _ = f.Println("days with more than one book:")
			printed = true
		}
		_, _ = t.Printf("  %s  %s ", cell.Day, cell.Title)
		_, _ = f.Printf("+%d others\n", cell.Others)
	}
	if printed {
		fmt.Println("")
	}
}

// heatmapFallback prints month count grids when the terminal cannot render
// cell colors.
func (pp *PrettyPrint) heatmapFallback(year int, cells []calendar.Cell) {
	counts := make(map[string]int, len(cells))
	for _, cell := range cells {
		counts[cell.Day.Key()] = cell.Count
	}

	then := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		days := calendar.DaysIn(then)
		count := make([]int, days)
		for d := 0; d < days; d++ {
			count[d] = counts[reading.NewDay(then.Year(), then.Month(), d+1).Key()]
		}
		pp.MonthCount(then, count)
		then = then.AddDate(0, 1, 0)
	}
}

func heatmapCapable() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
