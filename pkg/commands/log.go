package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/session"
	"tableflip.dev/shelf/pkg/store"
)

func addLog(topLevel *cobra.Command) {
	so := &options.SessionOptions{}
	io := &options.IDOptions{}
	bookRef := ""

	cmd := &cobra.Command{
		Use:   "log <book>",
		Short: "Log a reading session",
		Long: "Log a reading session for a book by id or title. A range is\n" +
			"split into one entry per included day; the page total is\n" +
			"distributed evenly with the earliest days taking the remainder.\n" +
			"Logging the same book and day again corrects the earlier entry.",
		Example: `
shelf log Dune --on 2024-03-05 --pages 25
shelf log Dune --from 2024-03-01 --to 2024-03-03 --pages 10
shelf log Dune --from 2024-03-01 --to 2024-03-07 --skip 2024-03-04 --pages 60 --notes "train week"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a book")
			}
			bookRef = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := so.IncludedDays()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := session.Session{
				BookRef:     bookRef,
				Days:        days,
				TotalPages:  so.Pages,
				Notes:       so.Notes,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSessionArgs(cmd, so)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
