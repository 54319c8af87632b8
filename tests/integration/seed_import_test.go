// Integration tests for seeding and JSON import workflows.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// seedCount is the size of the built-in default catalogue.
const seedCount = 35

func TestSeed_LoadsDefaultCatalogue(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunTokens("init")

	result := env.MustRunTokens("seed", "--json")
	counts := ParseJSON[map[string]int](t, result.Stdout)
	assert.Equal(t, seedCount, counts["added"])

	all := ParseJSON[[]types.Token](t, env.MustRunTokens("list", "--json").Stdout)
	assert.Len(t, all, seedCount)

	primary := ParseJSON[types.Token](t, env.MustRunTokens("get", "color/brand/primary", "--json").Stdout)
	assert.Equal(t, "#FF1D6C", primary.Value)
	assert.Equal(t, "color", primary.Category)
}

func TestSeed_IsIdempotent(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunTokens("init")

	env.MustRunTokens("seed")

	second := ParseJSON[map[string]int](t, env.MustRunTokens("seed", "--json").Stdout)
	assert.Equal(t, 0, second["added"], "second seed run should add nothing")

	all := ParseJSON[[]types.Token](t, env.MustRunTokens("list", "--json").Stdout)
	assert.Len(t, all, seedCount)
}

func TestImport_WrappedDollarKeys(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunTokens("init")

	src := `{
  "tokens": {
    "color/imported/one": {"$value": "#ABCDEF", "$type": "color", "$description": "imported"},
    "spacing/imported": {"value": "24px", "category": "spacing"}
  }
}`
	path := filepath.Join(env.TempDir, "import.json")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	result := env.MustRunTokens("import", path, "--json")
	imported := ParseJSON[struct {
		Added   int      `json:"added"`
		Skipped int      `json:"skipped"`
		Errors  []string `json:"errors"`
	}](t, result.Stdout)

	assert.Equal(t, 2, imported.Added)
	assert.Equal(t, 0, imported.Skipped)
	assert.Empty(t, imported.Errors)

	one := ParseJSON[types.Token](t, env.MustRunTokens("get", "color/imported/one", "--json").Stdout)
	assert.Equal(t, "#ABCDEF", one.Value)
	assert.Equal(t, "imported", one.Description)
}

func TestImport_SkipsExistingNames(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunTokens("init")

	env.MustRunTokens("add", "--name", "color/dup", "--category", "color", "--value", "#111111")

	src := `{"color/dup": {"$value": "#999999", "$type": "color"}}`
	path := filepath.Join(env.TempDir, "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	result := env.MustRunTokens("import", path, "--json")
	imported := ParseJSON[struct {
		Added   int `json:"added"`
		Skipped int `json:"skipped"`
	}](t, result.Stdout)

	assert.Equal(t, 0, imported.Added)
	assert.Equal(t, 1, imported.Skipped)

	// The existing value wins.
	kept := ParseJSON[types.Token](t, env.MustRunTokens("get", "color/dup", "--json").Stdout)
	assert.Equal(t, "#111111", kept.Value)
}

func TestImport_MissingFileFails(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunTokens("init")

	result := env.RunTokens("import", filepath.Join(env.TempDir, "nope.json"))
	assert.NotEqual(t, 0, result.ExitCode)
}
