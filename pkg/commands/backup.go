package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/backup"
	"tableflip.dev/shelf/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export books and logs as JSON",
		Example: `
shelf export
shelf export reading-backup.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Export{
				Path:        path,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import books and logs from an exported JSON document",
		Long: "Import a document exported by shelf. A collection present in\n" +
			"the document replaces the stored one wholesale; a missing or\n" +
			"malformed collection is left untouched.",
		Example: `
shelf import reading-backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Import{
				Path:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
