// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/book"
)

// BookOptions captures the catalog fields settable from the command line.
type BookOptions struct {
	Author    string
	Category  string
	PageCount int
	Color     string
}

// AddBookArgs wires book field flags on the provided command.
func AddBookArgs(cmd *cobra.Command, o *BookOptions) {
	cmd.Flags().StringVarP(&o.Author, "author", "a", "",
		"Specify the author.")
	cmd.Flags().StringVar(&o.Category, "category", "",
		`Specify the category, "academic" or "non-academic".`)
	cmd.Flags().IntVarP(&o.PageCount, "pages", "p", 0,
		"Specify the page count. Zero means untracked.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Specify a calendar color, example: --color="#3b82f6".`)
}

// GetCategory parses the category flag.
func (o *BookOptions) GetCategory() (book.Category, error) {
	return book.ParseCategory(o.Category)
}
