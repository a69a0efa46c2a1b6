package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"finplan/internal/config"
	"finplan/internal/source"
	"finplan/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache discovers statements, diffs against the cache, parses only
// changed files, and returns the combined transaction set.
func LoadWithCache(statementsDir string, formats map[string]config.BankFormat, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	known := make(map[string]struct{}, len(formats))
	for bank := range formats {
		known[bank] = struct{}{}
	}

	files, err := source.Discover(statementsDir, known)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", statementsDir, err)
	}

	result := &CachedLoadResult{LoadResult: LoadResult{TotalFiles: len(files)}}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	// Diff: partition into changed and unchanged
	var toReparse []source.DiscoveredFile
	var unchanged []string

	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}
		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			unchanged = append(unchanged, f.Path)
		} else {
			toReparse = append(toReparse, f)
		}
	}

	result.CacheHits = len(unchanged)
	result.Reparsed = len(toReparse)

	if len(unchanged) > 0 {
		txs, err := cache.LoadFiles(unchanged)
		if err != nil {
			return nil, fmt.Errorf("loading cached transactions: %w", err)
		}
		result.Transactions = append(result.Transactions, txs...)
		result.ParsedFiles += len(unchanged)
	}

	if len(toReparse) > 0 {
		results := parseParallel(toReparse, formats, result.CacheHits, result.TotalFiles, progressFn)

		for i, pr := range results {
			if pr.Err != nil {
				result.FileErrors++
				continue
			}
			result.ParsedFiles++
			result.SkippedRows += pr.SkippedRows
			result.Transactions = append(result.Transactions, pr.Transactions...)

			info, err := os.Stat(toReparse[i].Path)
			if err == nil {
				_ = cache.SaveFile(toReparse[i].Path, toReparse[i].Bank, info.ModTime().UnixNano(), info.Size(), pr.Transactions)
			}
		}
	}

	result.Transactions, result.Duplicates = dedupe(result.Transactions)
	sortNewestFirst(result.Transactions)
	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "finplan")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "statements.db")
}
