// Add command creates a new design token.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

var (
	addName        string
	addCategory    string
	addValue       string
	addDescription string
	addAliases     []string
	addTags        []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new design token",
	Long: `Add creates a new token with the given name, category, and value.

The name must be lowercase, start with a letter or digit, and may contain
hyphens, dots, and slashes. The category must be one of: ` + strings.Join(types.Categories, ", ") + `.

Example:
  tokens add --name color/brand/primary --category color --value "#FF1D6C"
  tokens add --name spacing/4 --category spacing --value 16px --tag layout`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "token name (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "token category (required)")
	addCmd.Flags().StringVar(&addValue, "value", "", "token value (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "token description")
	addCmd.Flags().StringSliceVar(&addAliases, "alias", nil, "alias name (repeatable)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag (repeatable)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("value")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	token := &types.Token{
		Name:        addName,
		Category:    addCategory,
		Value:       addValue,
		Description: addDescription,
		Aliases:     addAliases,
		Tags:        addTags,
	}

	saved, err := cat.Add(token)
	if err != nil {
		return fmt.Errorf("add token: %w", err)
	}

	if flagJSON {
		return printJSON(saved)
	}
	fmt.Printf("Created token %s (%s)\n", saved.Name, saved.ID)
	return nil
}
