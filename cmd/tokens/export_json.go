// Export-json command renders the catalogue as a token-set document.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/export"
)

var (
	jsonVersion     string
	jsonName        string
	jsonDescription string
	jsonOut         string
)

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Export the catalogue as a JSON token set",
	Long: `Export-json renders the full catalogue as a token-set document with
capture metadata. Nothing is persisted; use "tokens snapshot" to store
a set in the catalogue itself.

Example:
  tokens export-json --version v1.2.0 --out dist/tokens.json`,
	Args: cobra.NoArgs,
	RunE: runExportJSON,
}

func init() {
	exportJSONCmd.Flags().StringVar(&jsonVersion, "version", "", "version label (default: UTC timestamp)")
	exportJSONCmd.Flags().StringVar(&jsonName, "name", "", "set name")
	exportJSONCmd.Flags().StringVar(&jsonDescription, "description", "", "set description")
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "", "write to file instead of stdout")
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	set, err := cat.ExportSet(jsonVersion, jsonName, jsonDescription)
	if err != nil {
		return fmt.Errorf("build token set: %w", err)
	}

	doc, err := export.JSONSnapshot(set)
	if err != nil {
		return fmt.Errorf("render token set: %w", err)
	}

	return writeArtifact(jsonOut, doc)
}
