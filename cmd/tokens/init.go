// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the token catalogue storage",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the data directory with an empty token database.

Example:
  tokens init
  tokens init --data-dir ./design/.tokens-db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and config.yaml were created by PersistentPreRunE.
		// Attaching creates the data directory and database schema.
		_, detach, err := attachCatalog()
		if err != nil {
			return err
		}
		detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Printf("Initialized token catalogue in %s\n", dataDir)
		return nil
	},
}
