package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/cal"
	"tableflip.dev/shelf/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}
	day := false
	week := false
	month := false

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the reading calendar",
		Example: `
shelf calendar --day
shelf calendar --week --on 2024-03-05
shelf calendar --month
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cal.Calendar{
				Day:         day,
				Week:        week,
				Month:       month,
				On:          on,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&day, "day", "d", false, "Show the day view.")
	cmd.Flags().BoolVarP(&week, "week", "w", false, "Show the week view.")
	cmd.Flags().BoolVarP(&month, "month", "m", false, "Show the month view.")
	options.AddOnArgs(cmd, oo)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
