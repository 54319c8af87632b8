// Delete command removes a token from the catalogue.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a token by ID or name",
	Long: `Delete removes the token permanently. Snapshots taken before the
deletion still contain the token.

Example:
  tokens delete color/old-accent`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	deleted, err := cat.Delete(args[0])
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if !deleted {
		return fmt.Errorf("token %q: %w", args[0], types.ErrNotFound)
	}

	if flagJSON {
		return printJSON(map[string]any{"deleted": args[0]})
	}
	fmt.Printf("Deleted token %s\n", args[0])
	return nil
}
