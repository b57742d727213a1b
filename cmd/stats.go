package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog totals and a per-genre breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cleanup, err := openCatalog()
			if err != nil {
				return err
			}
			defer cleanup()

			s := cat.Stats()
			fmt.Printf("Total:     %d\n", s.Total)
			fmt.Printf("Available: %d\n", s.Available)
			fmt.Printf("Loaned:    %d\n", s.Loaned)

			if len(s.Genres) == 0 {
				return nil
			}
			fmt.Println("\nBy genre:")
			genres := make([]string, 0, len(s.Genres))
			for g := range s.Genres {
				genres = append(genres, g)
			}
			sort.Strings(genres)
			for _, g := range genres {
				fmt.Printf("  %-20s %d\n", g, s.Genres[g])
			}
			return nil
		},
	}
}
