// Package source discovers and parses bank-statement CSV exports.
package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoveredFile is one statement CSV found under the statements directory,
// tagged with the bank format its subdirectory names.
type DiscoveredFile struct {
	Path string
	Bank string
}

// Discover walks root looking for <bank>/<file>.csv, where <bank> must be a
// key of formats. Subdirectories without a known format are skipped; that
// keeps unrelated folders (archives, exports) out of the pipeline.
func Discover(root string, formats map[string]struct{}) ([]DiscoveredFile, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []DiscoveredFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		bank := entry.Name()
		if _, ok := formats[bank]; !ok {
			continue
		}

		matches, err := filepath.Glob(filepath.Join(root, bank, "*.csv"))
		if err != nil {
			return nil, err
		}
		for _, path := range matches {
			files = append(files, DiscoveredFile{Path: path, Bank: bank})
		}
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Bank != files[j].Bank {
			return files[i].Bank < files[j].Bank
		}
		return strings.Compare(files[i].Path, files[j].Path) < 0
	})
	return files, nil
}
