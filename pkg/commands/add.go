package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/add"
	"tableflip.dev/shelf/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
shelf add book Dune --author "Frank Herbert" --pages 412
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBook(cmd)

	topLevel.AddCommand(cmd)
}

func addBook(topLevel *cobra.Command) {
	bo := &options.BookOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "book <title>",
		Short: "Add a book to the catalog",
		Example: `
shelf add book Dune --author "Frank Herbert" --pages 412 --category non-academic
shelf add book "Linear Algebra" --category academic --color "#6366f1"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := bo.GetCategory()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       title,
				Author:      bo.Author,
				Category:    category,
				PageCount:   bo.PageCount,
				Color:       bo.Color,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddBookArgs(cmd, bo)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
