package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/shelf/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: base.Wrap80("Track your reading, one day at a time."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addEdit(topLevel)
	addGet(topLevel)
	addLog(topLevel)
	addStatus(topLevel)
	addDelete(topLevel)
	addCalendar(topLevel)
	addHeatmap(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}
