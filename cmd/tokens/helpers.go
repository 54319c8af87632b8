// Shared helpers for tokens CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BlackRoad-Studio/design-tokens/pkg/catalog"
	"github.com/BlackRoad-Studio/design-tokens/pkg/export"
	"github.com/BlackRoad-Studio/design-tokens/pkg/sqlite"
	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// errInvalidTokens is returned by the validate command when the sweep
// finds at least one invalid token.
var errInvalidTokens = errors.New("catalogue contains invalid tokens")

// attachCatalog resolves the data directory, attaches a SQLite store, and
// wraps it in a Catalog. The caller must defer the returned detach func.
func attachCatalog() (*catalog.Catalog, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}

	detach := func() {
		if err := store.Detach(); err != nil {
			slog.Warn("detach store", "error", err)
		}
	}

	return catalog.New(store, slog.Default()), detach, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printTokenDetails writes a human-readable view of a token.
func printTokenDetails(t *types.Token) {
	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Name:        %s\n", t.Name)
	fmt.Printf("Category:    %s\n", t.Category)
	fmt.Printf("Value:       %s\n", t.Value)
	if t.Description != "" {
		fmt.Printf("Description: %s\n", t.Description)
	}
	if len(t.Aliases) > 0 {
		fmt.Printf("Aliases:     %s\n", strings.Join(t.Aliases, ", "))
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(t.Tags, ", "))
	}
	if t.Deprecated {
		fmt.Printf("Deprecated:  yes")
		if t.DeprecatedReason != "" {
			fmt.Printf(" (%s)", t.DeprecatedReason)
		}
		fmt.Println()
	}
	fmt.Printf("Version:     %d\n", t.Version)
	fmt.Printf("Created:     %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated:     %s\n", t.UpdatedAt.Format(time.RFC3339))
}

// writeArtifact writes an export artifact either to stdout or, when out is
// non-empty, atomically to the given file path.
func writeArtifact(out, content string) error {
	if out == "" {
		fmt.Print(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Println()
		}
		return nil
	}

	if err := export.WriteFileAtomic(out, []byte(content)); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to max runes for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
