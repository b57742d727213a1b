package cmd

import (
	"fmt"
	"io"
	"strings"

	"library-inventory/library"
)

// openCatalog builds the configured store and loads the catalog from it.
// The returned cleanup must be called once the command is done.
func openCatalog() (*library.Catalog, func(), error) {
	cfg, err := library.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := cfg.OpenStore()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if c, ok := store.(io.Closer); ok {
			c.Close()
		}
	}
	cat, err := library.NewCatalog(store, cfg.LoanDays)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return cat, cleanup, nil
}

// printBooks renders records as an aligned table, shared by list and search.
func printBooks(books []*library.Book) {
	if len(books) == 0 {
		fmt.Println("No books to show.")
		return
	}
	fmt.Printf("%-18s %-32s %-24s %-14s %s\n", "ISBN", "Title", "Author", "Genre", "Status")
	fmt.Println(strings.Repeat("-", 110))
	for _, b := range books {
		fmt.Printf("%-18s %-32s %-24s %-14s %s\n",
			truncateString(b.ISBN, 18),
			truncateString(b.Title, 32),
			truncateString(b.Author, 24),
			truncateString(b.Genre, 14),
			b.Status())
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
