package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var title, author, isbn, genre string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			title = strings.TrimSpace(title)
			author = strings.TrimSpace(author)
			isbn = strings.TrimSpace(isbn)
			if title == "" || author == "" || isbn == "" {
				return fmt.Errorf("--title, --author and --isbn must not be blank")
			}

			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := cat.Add(title, author, isbn, strings.TrimSpace(genre))
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\n", b)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().StringVar(&isbn, "isbn", "", "unique ISBN")
	cmd.Flags().StringVar(&genre, "genre", "", "genre (default General)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("author")
	cmd.MarkFlagRequired("isbn")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ISBN",
		Short: "Remove a book that is not currently loaned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			removed, err := cat.Remove(args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("Not removed: no book with ISBN %q, or it is currently loaned.\n", args[0])
				return nil
			}
			fmt.Printf("Removed book with ISBN %q.\n", args[0])
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var availableOnly, loanedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if availableOnly && loanedOnly {
				return fmt.Errorf("--available and --loaned are mutually exclusive")
			}

			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			switch {
			case availableOnly:
				printBooks(cat.ListAvailable())
			case loanedOnly:
				printBooks(cat.ListLoaned())
			default:
				printBooks(cat.Books())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&availableOnly, "available", false, "only books on the shelf")
	cmd.Flags().BoolVar(&loanedOnly, "loaned", false, "only books currently out")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var byTitle, byAuthor, byISBN bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the catalog",
		Long: `Search matches QUERY case-insensitively as a substring. By default every
text field is searched; --title, --author and --isbn narrow the match.
--isbn looks up the exact ISBN.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			q := args[0]
			switch {
			case byISBN:
				b, ok := cat.FindByISBN(q)
				if !ok {
					fmt.Printf("No book with ISBN %q.\n", q)
					return nil
				}
				fmt.Println(b)
			case byTitle:
				printBooks(cat.FindByTitle(q))
			case byAuthor:
				printBooks(cat.FindByAuthor(q))
			default:
				printBooks(cat.Filter(q))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byTitle, "title", false, "match against titles only")
	cmd.Flags().BoolVar(&byAuthor, "author", false, "match against authors only")
	cmd.Flags().BoolVar(&byISBN, "isbn", false, "exact ISBN lookup")
	return cmd
}
