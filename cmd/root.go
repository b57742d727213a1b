package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

// NewRootCmd assembles the command tree. Every subcommand is a thin front
// end over the catalog: it collects and validates input, invokes one
// catalog operation and renders the result.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libinv",
		Short: "Track a library's book inventory, loans and returns",
		Long: `libinv manages a small library catalog backed by a flat snapshot file.

Books are identified by ISBN. Lending and returning toggle a book's
availability; every change is written back to the configured store.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Pick up LIBRARY_* overrides from a local .env if present.
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the config file (default ./library.yaml)")

	cmd.AddCommand(
		newAddCmd(),
		newRemoveCmd(),
		newListCmd(),
		newSearchCmd(),
		newLendCmd(),
		newReturnCmd(),
		newStatsCmd(),
		newImportCmd(),
		newSeedCmd(),
	)
	return cmd
}
