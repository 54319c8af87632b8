// Diff command compares two snapshots or a snapshot against the live catalogue.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

var diffCmd = &cobra.Command{
	Use:   "diff <ref-a> [ref-b]",
	Short: "Compare two catalogue versions",
	Long: `Diff compares two references, each a snapshot ID, a snapshot version
label, or the literal "current" for the live catalogue. The second
reference defaults to "current".

A token counts as changed only when its value, category, or deprecated
flag differ; description and tag edits are ignored.

Example:
  tokens diff v1.2.0
  tokens diff v1.2.0 v1.3.0 --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	refA := args[0]
	refB := types.RefCurrent
	if len(args) == 2 {
		refB = args[1]
	}

	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	report, err := cat.Diff(refA, refB)
	if err != nil {
		return fmt.Errorf("diff %s %s: %w", refA, refB, err)
	}

	if flagJSON {
		return printJSON(report)
	}

	printDiffReport(report)
	return nil
}

func printDiffReport(r *types.DiffReport) {
	fmt.Printf("Diff %s .. %s\n", r.A, r.B)

	if len(r.Added) > 0 {
		fmt.Printf("\nAdded (%d):\n", len(r.Added))
		for _, name := range sortedKeys(r.Added) {
			t := r.Added[name]
			fmt.Printf("  + %s = %s\n", name, t.Value)
		}
	}

	if len(r.Removed) > 0 {
		fmt.Printf("\nRemoved (%d):\n", len(r.Removed))
		for _, name := range sortedKeys(r.Removed) {
			t := r.Removed[name]
			fmt.Printf("  - %s = %s\n", name, t.Value)
		}
	}

	if len(r.Changed) > 0 {
		fmt.Printf("\nChanged (%d):\n", len(r.Changed))
		names := make([]string, 0, len(r.Changed))
		for name := range r.Changed {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ch := r.Changed[name]
			fmt.Printf("  ~ %s: %s -> %s\n", name, describeFields(ch.Before), describeFields(ch.After))
		}
	}

	fmt.Printf("\n%d added, %d removed, %d changed, %d unchanged\n",
		r.Summary.Added, r.Summary.Removed, r.Summary.Changed, r.Summary.Unchanged)
}

func describeFields(f types.TokenFields) string {
	s := fmt.Sprintf("%s (%s)", f.Value, f.Category)
	if f.Deprecated {
		s += " [deprecated]"
	}
	return s
}

func sortedKeys(m map[string]types.Token) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
