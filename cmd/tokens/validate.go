// Validate command sweeps the catalogue for invalid and deprecated tokens.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every token in the catalogue",
	Long: `Validate runs the token validator over the whole catalogue and
reports invalid and deprecated tokens. Exits non-zero when any token
is invalid.

Example:
  tokens validate
  tokens validate --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	report, err := cat.ValidateAll()
	if err != nil {
		return fmt.Errorf("validate catalogue: %w", err)
	}

	if flagJSON {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		if len(report.Invalid) > 0 {
			fmt.Printf("Invalid (%d):\n", len(report.Invalid))
			for _, inv := range report.Invalid {
				for _, e := range inv.Errors {
					fmt.Printf("  %s: %s\n", inv.Name, e)
				}
			}
			fmt.Println()
		}

		if len(report.Deprecated) > 0 {
			fmt.Printf("Deprecated (%d):\n", len(report.Deprecated))
			for _, dep := range report.Deprecated {
				if dep.Reason != "" {
					fmt.Printf("  %s (%s)\n", dep.Name, dep.Reason)
				} else {
					fmt.Printf("  %s\n", dep.Name)
				}
			}
			fmt.Println()
		}

		fmt.Printf("%d total, %d valid, %d invalid, %d deprecated\n",
			report.Summary.Total, report.Summary.Valid,
			report.Summary.Invalid, report.Summary.Deprecated)
	}

	if report.Summary.Invalid > 0 {
		return errInvalidTokens
	}
	return nil
}
