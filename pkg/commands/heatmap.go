package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/heatmap"
	"tableflip.dev/shelf/pkg/store"
)

func addHeatmap(topLevel *cobra.Command) {
	year := 0

	cmd := &cobra.Command{
		Use:   "heatmap [year]",
		Short: "Show the year heatmap",
		Long: "Show one year of reading as a color grid. Each day takes the\n" +
			"color of the first book logged that day; days with more than\n" +
			"one book are listed under the grid.",
		Example: `
shelf heatmap
shelf heatmap 2023
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many years, confused")
			}
			var err error
			year, err = strconv.Atoi(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := heatmap.Heatmap{
				Year:        year,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
