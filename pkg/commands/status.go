package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/status"
	"tableflip.dev/shelf/pkg/store"
)

func addStatus(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	bookRef := ""
	target := book.StatusToRead

	cmd := &cobra.Command{
		Use:   "status <book> <toread|reading|completed>",
		Short: "Set a book's status",
		Long: "Set a book's status by hand. Manual changes go in any\n" +
			"direction, including moving a completed book back to reading.",
		Example: `
shelf status Dune reading
shelf status Dune completed
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a book and a status")
			}
			var err error
			target, err = book.ParseStatus(args[len(args)-1])
			if err != nil {
				return err
			}
			bookRef = strings.Join(args[:len(args)-1], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := status.Status{
				BookRef:     bookRef,
				Status:      target,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
