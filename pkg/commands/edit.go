package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/book"
	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/edit"
	"tableflip.dev/shelf/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	bookRef := ""
	title := ""
	author := ""
	category := ""
	pages := -1
	colorFlag := ""

	cmd := &cobra.Command{
		Use:   "edit <book>",
		Short: "Edit book fields",
		Long:  "Edit a book by id or title. Only the flags you set change.",
		Example: `
shelf edit Dune --pages 420
shelf edit book-V1StGXR8_Z5jdHi6B-myT --title "Dune (1965)" --color "#f97316"
`,
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
			s := edit.Edit{
				BookRef:     bookRef,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			if cmd.Flags().Changed("author") {
				s.Author = &author
			}
			if cmd.Flags().Changed("category") {
				c, err := book.ParseCategory(category)
				if err != nil {
					return output.HandleError(err)
				}
				s.Category = &c
			}
			if cmd.Flags().Changed("pages") {
				s.PageCount = &pages
			}
			if cmd.Flags().Changed("color") {
				s.Color = &colorFlag
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVarP(&author, "author", "a", "", "New author.")
	cmd.Flags().StringVar(&category, "category", "", `New category, "academic" or "non-academic".`)
	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "New page count. Zero means untracked.")
	cmd.Flags().StringVar(&colorFlag, "color", "", "New calendar color.")
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
