package export

import (
	"encoding/json"
	"fmt"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// JSONSnapshot renders a token set as an indented JSON document, the
// same serialized form stored snapshots use.
func JSONSnapshot(set types.TokenSet) (string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(data), nil
}
