package llm

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// raw extraction payload, as a generic map. Every field is optional here —
// the record builder fills defaults — but a field that is present must carry
// the right container type.
func BuildPayloadJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"text":     map[string]any{"type": "string"},
			"sections": sectionListProp(),
			"keywords": stringListProp(),
			"aliases":  stringListProp(),
			"pages":    stringListProp(),
		},
	}
}

func sectionListProp() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sec_id":  map[string]any{"type": "string"},
				"heading": map[string]any{"type": "string"},
				"text":    map[string]any{"type": "string"},
			},
		},
	}
}

func stringListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
