package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions controls how shelf reports failures; the colored tables
// themselves are not affected.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&o.JSON, "json", false,
		"Report errors as a JSON object instead of plain text.")
}

// HandleError wraps the error as {"error": ...} on stdout when --json is
// set, so scripts driving shelf can parse failures. Otherwise the error
// passes through for cobra to print.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		b, merr := json.Marshal(map[string]string{"error": err.Error()})
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
