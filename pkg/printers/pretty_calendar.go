package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/shelf/pkg/calendar"
	"tableflip.dev/shelf/pkg/reading"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a month grid with days that carry logs in bold.
func (pp *PrettyPrint) Month(then time.Time, logs ...*reading.Log) {
	days := calendar.DaysIn(then)

	count := make([]int, days)

	grouped := calendar.ByDay(logs)
	for i := 0; i < days; i++ {
		day := reading.NewDay(then.Year(), then.Month(), i+1)
		count[i] = len(grouped[day.Key()])
	}

	pp.MonthCount(then, count)
}

func (pp *PrettyPrint) MonthCount(then time.Time, count []int) {
	d := calendar.StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := calendar.DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		if i < d {
			fmt.Print("   ")
		}
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// Week prints the seven days around a date, each with its resolved logs.
func (pp *PrettyPrint) Week(week []reading.Day, entriesFor func(reading.Day) []calendar.Entry) {
	today := reading.Today()

	p := color.New()
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	for _, day := range week {
		printer := p
		if day.Same(today) {
			printer = b
		}
		_, _ = printer.Printf("%s %s", day.Format("Mon"), day.Format("Jan 2"))

		entries := entriesFor(day)
		if len(entries) == 0 {
			_, _ = f.Println("  -")
			continue
		}
		_, _ = p.Println("")
		for _, e := range entries {
			_, _ = f.Print("    ")
			_, _ = p.Printf("%s", e.Book.Title)
			if e.Log.PagesRead > 0 {
				_, _ = f.Printf(" - %d pages", e.Log.PagesRead)
			}
			_, _ = p.Println("")
		}
	}
	fmt.Println("")
}
