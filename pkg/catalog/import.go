// Batch import of token source files. The accepted shape is a mapping of
// token name to record, with fields readable under W3C "$"-prefixed or
// plain keys, optionally wrapped in a top-level "tokens" object.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// ImportSpec is one record from an import source. The "$"-prefixed key
// wins when a field appears under both names.
type ImportSpec struct {
	Value       string
	Category    string
	Description string
	Tags        []string
}

// importSpecJSON holds both accepted spellings of each field.
type importSpecJSON struct {
	DollarValue       any      `json:"$value"`
	Value             any      `json:"value"`
	DollarType        string   `json:"$type"`
	Category          string   `json:"category"`
	DollarDescription string   `json:"$description"`
	Description       string   `json:"description"`
	Tags              []string `json:"tags"`
}

// UnmarshalJSON resolves the two accepted key spellings and stringifies
// non-string values.
func (s *ImportSpec) UnmarshalJSON(data []byte) error {
	var raw importSpecJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value := raw.DollarValue
	if value == nil {
		value = raw.Value
	}
	switch v := value.(type) {
	case nil:
		s.Value = ""
	case string:
		s.Value = v
	default:
		s.Value = fmt.Sprintf("%v", v)
	}

	s.Category = raw.DollarType
	if s.Category == "" {
		s.Category = raw.Category
	}

	s.Description = raw.DollarDescription
	if s.Description == "" {
		s.Description = raw.Description
	}

	s.Tags = raw.Tags
	return nil
}

// ImportResult summarizes a batch import. Skipped counts entries whose
// name already existed; Errors collects per-entry validation failures.
type ImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ImportFile reads a JSON token source from disk and imports it.
func (c *Catalog) ImportFile(path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading import file: %w", err)
	}

	specs, err := ParseImportSource(data)
	if err != nil {
		return ImportResult{}, fmt.Errorf("parsing import file: %w", err)
	}
	return c.ImportBatch(specs), nil
}

// ParseImportSource decodes an import document. Both the wrapped form
// {"tokens": {...}} and a flat name-to-record object are accepted;
// entries that are not objects are ignored.
func ParseImportSource(data []byte) (map[string]ImportSpec, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	entries := top
	if wrapped, ok := top["tokens"]; ok && isJSONObject(wrapped) {
		if err := json.Unmarshal(wrapped, &entries); err != nil {
			return nil, err
		}
	}

	specs := make(map[string]ImportSpec, len(entries))
	for name, raw := range entries {
		if !isJSONObject(raw) {
			continue
		}
		var spec ImportSpec
		if err := json.Unmarshal(raw, &spec); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}

// ImportBatch adds every entry as a fresh token. A duplicate name counts
// as skipped, any other failure is collected as an error message, and no
// single entry's failure aborts the batch. An unrecognized category
// falls back to "color". Entries are processed in name order so results
// are deterministic.
func (c *Catalog) ImportBatch(specs map[string]ImportSpec) ImportResult {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	result := ImportResult{Errors: []string{}}
	for _, name := range names {
		spec := specs[name]
		category := spec.Category
		if !types.IsValidCategory(category) {
			category = types.CategoryColor
		}

		t := &types.Token{
			ID:          newID(),
			Name:        name,
			Category:    category,
			Value:       spec.Value,
			Description: spec.Description,
			Tags:        spec.Tags,
		}

		switch _, err := c.Add(t); {
		case err == nil:
			result.Added++
		case errors.Is(err, types.ErrDuplicateName):
			result.Skipped++
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	c.log.Info("import finished",
		"added", result.Added,
		"skipped", result.Skipped,
		"errors", len(result.Errors))
	return result
}
