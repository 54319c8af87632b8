// Seed command loads the default BlackRoad token catalogue.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default token catalogue",
	Long: `Seed adds the built-in BlackRoad defaults (brand colors, spacing
scale, radii, typography, shadows). Tokens that already exist are left
untouched, so seeding is safe to repeat.

Example:
  tokens seed`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	added, err := cat.SeedDefaults()
	if err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int{"added": added})
	}
	fmt.Printf("Seeded %d default token(s)\n", added)
	return nil
}
