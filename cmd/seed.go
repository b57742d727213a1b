package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"library-inventory/library"
)

// sampleBooks is the starter catalog inserted by the seed command.
var sampleBooks = []importRecord{
	{Title: "Cien años de soledad", Author: "Gabriel García Márquez", ISBN: "978-0-06-088328-7", Genre: "Novel"},
	{Title: "Don Quijote de la Mancha", Author: "Miguel de Cervantes", ISBN: "978-84-376-0494-7", Genre: "Classic"},
	{Title: "El Principito", Author: "Antoine de Saint-Exupéry", ISBN: "978-0-15-601219-5", Genre: "Children"},
	{Title: "1984", Author: "George Orwell", ISBN: "978-0-451-52493-5", Genre: "Science Fiction"},
	{Title: "Rayuela", Author: "Julio Cortázar", ISBN: "978-84-376-0602-6", Genre: "Novel"},
	{Title: "La sombra del viento", Author: "Carlos Ruiz Zafón", ISBN: "978-84-08-04171-3", Genre: "Mystery"},
	{Title: "Crónica de una muerte anunciada", Author: "Gabriel García Márquez", ISBN: "978-84-376-0781-8", Genre: "Novel"},
	{Title: "Harry Potter y la piedra filosofal", Author: "J.K. Rowling", ISBN: "978-84-7888-445-8", Genre: "Fantasy"},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a small sample catalog",
		Long:  `Seed adds a handful of well-known titles, skipping ISBNs already present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			added := 0
			for _, r := range sampleBooks {
				_, err := cat.Add(r.Title, r.Author, r.ISBN, r.Genre)
				if errors.Is(err, library.ErrDuplicateKey) {
					continue
				}
				if err != nil {
					return err
				}
				added++
			}
			fmt.Printf("Seeded %d book(s); catalog now holds %d.\n", added, cat.Len())
			return nil
		},
	}
}
