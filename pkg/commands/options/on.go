package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/reading"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-02-28".`)
}

// GetOn parses the flag; the zero Day means "today" to the runners.
func (o *OnOptions) GetOn() (reading.Day, error) {
	if o.OnString == "" {
		return reading.Day{}, nil
	}
	return reading.ParseDay(o.OnString)
}
