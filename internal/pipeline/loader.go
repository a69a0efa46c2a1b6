package pipeline

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"finplan/internal/config"
	"finplan/internal/model"
	"finplan/internal/source"
)

// LoadResult holds the output of the full statement loading pipeline.
type LoadResult struct {
	Transactions []model.Transaction
	TotalFiles   int
	ParsedFiles  int
	SkippedRows  int
	FileErrors   int
	Duplicates   int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and parses all statement CSVs under statementsDir.
// It uses a bounded worker pool for parallel parsing.
func Load(statementsDir string, formats map[string]config.BankFormat, progressFn ProgressFunc) (*LoadResult, error) {
	known := make(map[string]struct{}, len(formats))
	for bank := range formats {
		known[bank] = struct{}{}
	}

	files, err := source.Discover(statementsDir, known)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", statementsDir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	results := parseParallel(files, formats, 0, len(files), progressFn)

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.SkippedRows += pr.SkippedRows
		result.Transactions = append(result.Transactions, pr.Transactions...)
	}

	result.Transactions, result.Duplicates = dedupe(result.Transactions)
	sortNewestFirst(result.Transactions)
	return result, nil
}

// parseParallel parses files with a bounded worker pool and reports progress
// offset by the number of files already accounted for.
func parseParallel(files []source.DiscoveredFile, formats map[string]config.BankFormat, done, total int, progressFn ProgressFunc) []source.ParseResult {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseFile(files[idx], formats[files[idx].Bank])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n)+done, total)
				}
			}
		}()
	}

	wg.Wait()
	return results
}

// dedupe drops transactions whose ID was already seen. Overlapping exports
// of the same account produce identical rows across files.
func dedupe(txs []model.Transaction) ([]model.Transaction, int) {
	seen := make(map[string]struct{}, len(txs))
	out := txs[:0]
	dropped := 0
	for _, t := range txs {
		if _, ok := seen[t.ID]; ok {
			dropped++
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out, dropped
}

func sortNewestFirst(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		// Dateless rows (reserved, pending) sort to the front.
		if txs[i].Date.IsZero() != txs[j].Date.IsZero() {
			return txs[i].Date.IsZero()
		}
		return txs[i].Date.After(txs[j].Date)
	})
}
