package ingest

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/aaoifi-tools/standards-extractor/constants"
)

// AllowedExt checks if a file extension is in the allowed set (pdf only).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// DiscoverPDFs lists the PDF files directly under dir, matching the extension
// case-insensitively, deduplicated, and sorted ascending by the standard
// number extracted from each filename.
func DiscoverPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !AllowedExt(filepath.Ext(e.Name())) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	sort.SliceStable(files, func(i, j int) bool {
		return ExtractStandardNumber(filepath.Base(files[i])) < ExtractStandardNumber(filepath.Base(files[j]))
	})
	return files, nil
}
