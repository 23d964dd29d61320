package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/remove"
	"tableflip.dev/shelf/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete something",
		Example: `
shelf delete book Dune
shelf delete log log-V1StGXR8_Z5jdHi6B-myT
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	deleteBook(cmd)
	deleteLog(cmd)

	topLevel.AddCommand(cmd)
}

func deleteBook(topLevel *cobra.Command) {
	bookRef := ""

	cmd := &cobra.Command{
		Use:   "book <book>",
		Short: "Delete a book and all of its logs",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a book")
			}
			bookRef = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				BookRef:     bookRef,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func deleteLog(topLevel *cobra.Command) {
	logID := ""

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Delete a single log entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a log id")
			}
			logID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				LogID:       logID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
