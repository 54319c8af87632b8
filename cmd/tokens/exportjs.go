// Export-js command renders tokens as an ES module.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/export"
)

var (
	jsCategory string
	jsOut      string
)

var exportJSCmd = &cobra.Command{
	Use:   "export-js",
	Short: "Export tokens as an ES module",
	Long: `Export-js renders per-category exported constants plus a grouped
tokens object, with names in camelCase.

Example:
  tokens export-js --out dist/tokens.js`,
	Args: cobra.NoArgs,
	RunE: runExportJS,
}

func init() {
	exportJSCmd.Flags().StringVar(&jsCategory, "category", "", "only export this category")
	exportJSCmd.Flags().StringVar(&jsOut, "out", "", "write to file instead of stdout")
}

func runExportJS(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	items, err := cat.List(jsCategory, false)
	if err != nil {
		return fmt.Errorf("list tokens: %w", err)
	}

	return writeArtifact(jsOut, export.JSModule(items))
}
