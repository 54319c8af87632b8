// Update command patches an existing token.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

var (
	updateValue       string
	updateDescription string
	updateAliases     []string
	updateTags        []string
	updateDeprecate   bool
	updateUndeprecate bool
	updateReason      string
)

var updateCmd = &cobra.Command{
	Use:   "update <id-or-name>",
	Short: "Update fields of an existing token",
	Long: `Update applies the given flags as a patch; unset flags leave the
field untouched. Every successful update increments the token's version.

Example:
  tokens update color/brand/primary --value "#E91E63"
  tokens update spacing/2 --deprecate --reason "use spacing/4"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateValue, "value", "", "new value")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringSliceVar(&updateAliases, "alias", nil, "replace aliases (repeatable)")
	updateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "replace tags (repeatable)")
	updateCmd.Flags().BoolVar(&updateDeprecate, "deprecate", false, "mark the token deprecated")
	updateCmd.Flags().BoolVar(&updateUndeprecate, "undeprecate", false, "clear the deprecated flag")
	updateCmd.Flags().StringVar(&updateReason, "reason", "", "deprecation reason")
	updateCmd.MarkFlagsMutuallyExclusive("deprecate", "undeprecate")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	patch := buildPatch(cmd)
	if patch.IsZero() {
		return fmt.Errorf("nothing to update: pass at least one field flag")
	}

	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	updated, err := cat.Update(args[0], patch)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated token %s (version %d)\n", updated.Name, updated.Version)
	return nil
}

// buildPatch translates changed flags into a TokenPatch. Only flags the
// user actually set make it into the patch.
func buildPatch(cmd *cobra.Command) types.TokenPatch {
	var patch types.TokenPatch

	if cmd.Flags().Changed("value") {
		patch.Value = &updateValue
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateDescription
	}
	if cmd.Flags().Changed("alias") {
		patch.Aliases = updateAliases
	}
	if cmd.Flags().Changed("tag") {
		patch.Tags = updateTags
	}
	if updateDeprecate {
		v := true
		patch.Deprecated = &v
	}
	if updateUndeprecate {
		v := false
		patch.Deprecated = &v
	}
	if cmd.Flags().Changed("reason") {
		patch.DeprecatedReason = &updateReason
	}

	return patch
}
