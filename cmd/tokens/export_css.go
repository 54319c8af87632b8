// Export-css command renders tokens as CSS custom properties.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/export"
)

var (
	cssPrefix            string
	cssCategory          string
	cssIncludeDeprecated bool
	cssOut               string
)

var exportCSSCmd = &cobra.Command{
	Use:   "export-css",
	Short: "Export tokens as CSS custom properties",
	Long: `Export-css renders a :root block of custom properties, grouped by
category, with alias variables referencing their canonical token.

Example:
  tokens export-css
  tokens export-css --prefix --br --out dist/tokens.css`,
	Args: cobra.NoArgs,
	RunE: runExportCSS,
}

func init() {
	exportCSSCmd.Flags().StringVar(&cssPrefix, "prefix", export.DefaultCSSPrefix, "custom property prefix")
	exportCSSCmd.Flags().StringVar(&cssCategory, "category", "", "only export this category")
	exportCSSCmd.Flags().BoolVar(&cssIncludeDeprecated, "include-deprecated", false, "include deprecated tokens with a marker comment")
	exportCSSCmd.Flags().StringVar(&cssOut, "out", "", "write to file instead of stdout")
}

func runExportCSS(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	items, err := cat.List(cssCategory, cssIncludeDeprecated)
	if err != nil {
		return fmt.Errorf("list tokens: %w", err)
	}

	return writeArtifact(cssOut, export.CSS(items, cssPrefix))
}
