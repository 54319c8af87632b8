// Import command loads tokens from a W3C-style JSON file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tokens from a JSON file",
	Long: `Import reads a JSON file of token definitions and adds them to the
catalogue. Both $-prefixed keys ($value, $type, $description) and plain
keys are accepted; tokens whose names already exist are skipped.

Example:
  tokens import design-tokens.json
  tokens import figma-export.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	result, err := cat.ImportFile(args[0])
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(result)
	}

	fmt.Printf("Imported: %d added, %d skipped\n", result.Added, result.Skipped)
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, "Warning:", e)
	}
	return nil
}
