// Export-tailwind command renders tokens as a Tailwind theme extension.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/export"
)

var tailwindOut string

var exportTailwindCmd = &cobra.Command{
	Use:   "export-tailwind",
	Short: "Export tokens as a Tailwind config",
	Long: `Export-tailwind renders a module.exports theme.extend block mapping
token categories onto Tailwind sections (colors, spacing, borderRadius,
boxShadow, zIndex, and friends).

Example:
  tokens export-tailwind --out tailwind.tokens.js`,
	Args: cobra.NoArgs,
	RunE: runExportTailwind,
}

func init() {
	exportTailwindCmd.Flags().StringVar(&tailwindOut, "out", "", "write to file instead of stdout")
}

func runExportTailwind(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	items, err := cat.List("", false)
	if err != nil {
		return fmt.Errorf("list tokens: %w", err)
	}

	return writeArtifact(tailwindOut, export.TailwindConfig(items))
}
