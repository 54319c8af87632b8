// Snapshots command lists stored snapshots.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSnapshots,
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	cat, detach, err := attachCatalog()
	if err != nil {
		return err
	}
	defer detach()

	headers, err := cat.Snapshots()
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	if flagJSON {
		return printJSON(headers)
	}

	if len(headers) == 0 {
		fmt.Println("No snapshots found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tNAME\tCREATED")
	fmt.Fprintln(w, "--\t-------\t----\t-------")

	for _, h := range headers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortID(h.ID), h.Version, truncate(h.Name, 30), h.CreatedAt.Format(time.RFC3339))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	fmt.Printf("\nTotal: %d snapshot(s)\n", len(headers))
	return nil
}
