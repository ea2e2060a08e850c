// Package index rebuilds the combined lightweight index over all persisted
// standard records. It is a separate pass and regenerates wholesale each run.
package index

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Entry is the per-standard projection carried into the index.
type Entry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Aliases  []string `json:"aliases"`
}

// File is the combined index object.
type File struct {
	TotalStandards int     `json:"total_standards"`
	Standards      []Entry `json:"standards"`
}

// Aggregate scans every .json record under dir in lexical order and collects
// one Entry per parseable record, defaulting absent fields. A record that
// fails to parse is logged and skipped; it never aborts the scan.
func Aggregate(dir string, logger *slog.Logger) (*File, error) {
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	out := &File{Standards: []Entry{}}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("index.read_failed", "path", path, "error", err)
			continue
		}

		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			logger.Warn("index.parse_failed", "path", path, "error", err)
			continue
		}
		if entry.Keywords == nil {
			entry.Keywords = []string{}
		}
		if entry.Aliases == nil {
			entry.Aliases = []string{}
		}

		out.Standards = append(out.Standards, entry)
		logger.Info("index.extracted", "id", entry.ID, "path", filepath.Base(path))
	}

	out.TotalStandards = len(out.Standards)
	return out, nil
}

// WriteJSON persists the index with two-space indentation, Arabic text
// unescaped.
func WriteJSON(path string, f *File) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
