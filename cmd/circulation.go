package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLendCmd() *cobra.Command {
	var borrower string
	var days int

	cmd := &cobra.Command{
		Use:   "lend ISBN",
		Short: "Lend a book to a borrower",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(borrower) == "" {
				return fmt.Errorf("--borrower must not be blank")
			}

			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			isbn := args[0]
			performed, err := cat.Lend(isbn, borrower, days)
			if err != nil {
				return err
			}
			if !performed {
				b, _ := cat.FindByISBN(isbn)
				fmt.Printf("Not lent: the book is already out (%s).\n", b.Status())
				return nil
			}

			b, _ := cat.FindByISBN(isbn)
			fmt.Printf("Lent %q to %s, due %s.\n", b.Title, *b.Borrower, b.DueAt.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&borrower, "borrower", "", "who receives the book")
	cmd.Flags().IntVar(&days, "days", 0, "loan period in days (defaults to the configured period)")
	cmd.MarkFlagRequired("borrower")
	return cmd
}

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return ISBN",
		Short: "Record the return of a loaned book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			isbn := args[0]
			performed, err := cat.Return(isbn)
			if err != nil {
				return err
			}
			if !performed {
				fmt.Println("Nothing to do: the book is already available.")
				return nil
			}

			b, _ := cat.FindByISBN(isbn)
			fmt.Printf("Returned %q, back on the shelf.\n", b.Title)
			return nil
		},
	}
}
