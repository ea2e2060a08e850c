package record

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the record to <dir>/<id>.json with two-space indentation.
// HTML escaping is off so the Arabic text is stored verbatim. Returns the
// output path.
func Save(dir string, rec *StandardRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}

	path := filepath.Join(dir, rec.ID+".json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
