// List command shows tokens in a table or as JSON.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listCategory     string
	listNoDeprecated bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens in the catalogue",
	Long: `List shows all tokens ordered by category then name.

Example:
  tokens list
  tokens list --category color
  tokens list --no-deprecated --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only show tokens in this category")
	listCmd.Flags().BoolVar(&listNoDeprecated, "no-deprecated", false, "hide deprecated tokens")
}

func runList(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	items, err := cat.List(listCategory, !listNoDeprecated)
	if err != nil {
		return fmt.Errorf("list tokens: %w", err)
	}

	if flagJSON {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No tokens found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tVALUE\tVER\tDEPRECATED")
	fmt.Fprintln(w, "--\t----\t--------\t-----\t---\t----------")

	for _, t := range items {
		dep := ""
		if t.Deprecated {
			dep = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(t.ID), truncate(t.Name, 40), t.Category, truncate(t.Value, 30), t.Version, dep)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	fmt.Printf("\nTotal: %d token(s)\n", len(items))
	return nil
}
