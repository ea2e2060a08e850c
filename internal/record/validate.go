package record

import (
	"encoding/json"
	"fmt"

	"github.com/aaoifi-tools/standards-extractor/internal/llm"
)

// BuildRecordJSONSchema returns the persistence-gate schema: all seven
// top-level keys required, the four list fields array-typed. Element shapes
// inside sections are not re-checked here — the builder already backfilled
// them — and title/text may be empty.
func BuildRecordJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"title":    map[string]any{"type": "string"},
			"text":     map[string]any{"type": "string"},
			"sections": map[string]any{"type": "array"},
			"keywords": map[string]any{"type": "array"},
			"aliases":  map[string]any{"type": "array"},
			"pages":    map[string]any{"type": "array"},
		},
		"required": []string{"id", "title", "text", "sections", "keywords", "aliases", "pages"},
	}
}

// ValidateJSON checks JSON-encoded record bytes against the record schema.
func ValidateJSON(data []byte) error {
	return llm.ValidateJSONAgainstSchema(BuildRecordJSONSchema(), data)
}

// Validate checks the record's persisted shape.
func (r *StandardRecord) Validate() error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return ValidateJSON(b)
}
