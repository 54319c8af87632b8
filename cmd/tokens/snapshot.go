// Snapshot command captures the current catalogue as an immutable set.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	snapshotVersion     string
	snapshotName        string
	snapshotDescription string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture a snapshot of the catalogue",
	Long: `Snapshot stores an immutable copy of every token, including
deprecated ones. The version label defaults to a UTC timestamp
(YYYYMMDDHHMMSS) when not given.

Example:
  tokens snapshot
  tokens snapshot --version v1.2.0 --name "spring release"`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotVersion, "version", "", "version label (default: UTC timestamp)")
	snapshotCmd.Flags().StringVar(&snapshotName, "name", "snapshot", "snapshot name")
	snapshotCmd.Flags().StringVar(&snapshotDescription, "description", "", "snapshot description")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	id, err := cat.Snapshot(snapshotVersion, snapshotName, snapshotDescription)
	if err != nil {
		return fmt.Errorf("capture snapshot: %w", err)
	}

	set, err := cat.ResolveSnapshot(id)
	if err != nil {
		return fmt.Errorf("read back snapshot: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"id": id, "count": len(set)})
	}
	fmt.Printf("Captured snapshot %s (%d tokens)\n", id, len(set))
	return nil
}
