package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

var fenceMarkers = strings.NewReplacer("```json", "", "```", "")

// ExtractJSON strips markdown code-fence markers from model output and decodes
// what is left into v. Any failure wraps ErrUnparseableOutput.
func ExtractJSON(text string, v any) error {
	cleaned := strings.TrimSpace(fenceMarkers.Replace(text))
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", ErrUnparseableOutput)
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparseableOutput, err)
	}
	return nil
}
