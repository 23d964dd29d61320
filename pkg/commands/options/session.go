package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/reading"
)

// SessionOptions captures the date range and page total of a reading
// session.
type SessionOptions struct {
	OnString   string
	FromString string
	ToString   string
	Skip       []string
	Pages      int
	Notes      string
}

// AddSessionArgs wires session flags on the provided command.
func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Log a single day, example: --on="2024-02-28".`)
	cmd.Flags().StringVar(&o.FromString, "from", "",
		"First day of the session range.")
	cmd.Flags().StringVar(&o.ToString, "to", "",
		"Last day of the session range, inclusive.")
	cmd.Flags().StringArrayVar(&o.Skip, "skip", nil,
		"Deselect a day inside the range. May repeat.")
	cmd.Flags().IntVarP(&o.Pages, "pages", "p", 0,
		"Total pages read, distributed over the included days.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Notes attached to every day of the session.")
}

// IncludedDays resolves the flags into the curated included-day set:
// a single day for --on, otherwise the [from, to] range minus the
// skipped days. Both ends default to today.
func (o *SessionOptions) IncludedDays() ([]reading.Day, error) {
	if o.OnString != "" {
		day, err := reading.ParseDay(o.OnString)
		if err != nil {
			return nil, err
		}
		return []reading.Day{day}, nil
	}

	from := reading.Today()
	to := reading.Today()
	var err error
	if o.FromString != "" {
		if from, err = reading.ParseDay(o.FromString); err != nil {
			return nil, err
		}
	}
	if o.ToString != "" {
		if to, err = reading.ParseDay(o.ToString); err != nil {
			return nil, err
		}
	}

	days, err := reading.Range(from, to)
	if err != nil {
		return nil, err
	}
	if len(o.Skip) == 0 {
		return days, nil
	}

	skipped := make(map[string]bool, len(o.Skip))
	for _, raw := range o.Skip {
		day, err := reading.ParseDay(raw)
		if err != nil {
			return nil, err
		}
		skipped[day.Key()] = true
	}
	included := make([]reading.Day, 0, len(days))
	for _, d := range days {
		if !skipped[d.Key()] {
			included = append(included, d)
		}
	}
	return included, nil
}
