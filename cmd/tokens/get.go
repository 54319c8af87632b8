// Get command fetches a single token by ID or name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id-or-name>",
	Short: "Show a token by ID or name",
	Long: `Get looks the token up by UUID first, then by exact name.

Example:
  tokens get color/brand/primary
  tokens get 0190d4a2-5b7e-7c3f-8a1b-2c3d4e5f6a7b --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	token, err := cat.Get(args[0])
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	if token == nil {
		return fmt.Errorf("token %q: %w", args[0], types.ErrNotFound)
	}

	if flagJSON {
		return printJSON(token)
	}
	printTokenDetails(token)
	return nil
}
