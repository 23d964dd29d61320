// Package heatmap provides the year heatmap runner.
package heatmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/shelf/pkg/calendar"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/store"
	"tableflip.dev/shelf/pkg/tracker"
)

// Heatmap renders one year of reading activity as a color grid.
type Heatmap struct {
	Year        int
	Persistence store.Persistence
}

func (n *Heatmap) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show heatmap, no persistence")
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

	year := n.Year
	if year == 0 {
		year = time.Now().Year()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%d", year))
	pp.Heatmap(year, calendar.Heatmap(year, t.Logs(), t.Books()))

	return nil
}
