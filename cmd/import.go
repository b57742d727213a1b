package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"library-inventory/library"
)

// importRecord is the shape of one entry in an import file: a new title
// without any loan state.
type importRecord struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Genre  string `json:"genre"`
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Bulk-add books from a JSON file",
		Long: `Import reads a JSON array of {title, author, isbn, genre} objects and adds
each entry to the catalog. Entries whose ISBN is already present are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			var records []importRecord
			if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("parse import file: %w", err)
			}

			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			added, skipped := 0, 0
			for _, r := range records {
				b, err := cat.Add(r.Title, r.Author, r.ISBN, r.Genre)
				switch {
				case errors.Is(err, library.ErrDuplicateKey):
					slog.Warn("skipping duplicate ISBN", "isbn", r.ISBN, "title", r.Title)
					skipped++
				case err != nil:
					return err
				default:
					fmt.Printf("Added %s\n", b)
					added++
				}
			}

			fmt.Printf("\nImport complete: %d added, %d skipped.\n", added, skipped)
			return nil
		},
	}
}
