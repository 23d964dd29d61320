package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/get"
	"tableflip.dev/shelf/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	statusFilter := ""
	wantLogs := false

	cmd := &cobra.Command{
		Use:       "get [books|logs]",
		Short:     "Get the catalog or the ledger",
		ValidArgs: []string{"books", "logs"},
		Example: `
shelf get books
shelf get books --status reading
shelf get logs --id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			switch args[0] {
			case "books":
			case "logs":
				wantLogs = true
			default:
				return fmt.Errorf("unknown collection %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var status book.Status
			if statusFilter != "" {
				var err error
				if status, err = book.ParseStatus(statusFilter); err != nil {
					return output.HandleError(err)
				}
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Logs:        wantLogs,
				Status:      status,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&statusFilter, "status", "s", "",
		`Filter books by status: "toread", "reading" or "completed".`)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
