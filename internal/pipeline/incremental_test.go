package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"finplan/internal/config"
	"finplan/internal/store"
)

func writeNordeaStatement(t *testing.T, root, name string, rows ...string) string {
	t.Helper()
	dir := filepath.Join(root, "nordea")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	content := "Booking date;Amount;Title;Balance;Currency\n"
	for _, r := range rows {
		content += r + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeNordeaStatement(t, root, "jan.csv",
		"2024/01/22;-218,75;COOP365;100,00;DKK",
		"2024/01/19;-1.697,00;IKEA;100,00;DKK",
	)
	writeNordeaStatement(t, root, "feb.csv",
		"2024/02/10;-50,00;Cafe;100,00;DKK",
		"2024/01/22;-218,75;COOP365;300,00;DKK", // overlap with jan.csv
	)

	result, err := Load(root, config.Config{}.BankFormats(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalFiles != 2 || result.ParsedFiles != 2 {
		t.Errorf("files = %d/%d, want 2/2", result.ParsedFiles, result.TotalFiles)
	}
	if result.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", result.Duplicates)
	}
	if len(result.Transactions) != 3 {
		t.Fatalf("transactions = %d, want 3", len(result.Transactions))
	}
	// Newest first.
	if result.Transactions[0].Description != "Cafe" {
		t.Errorf("first transaction = %q, want Cafe", result.Transactions[0].Description)
	}
}

func TestLoadWithCache(t *testing.T) {
	root := t.TempDir()
	writeNordeaStatement(t, root, "jan.csv",
		"2024/01/22;-218,75;COOP365;100,00;DKK",
	)

	cache, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cache.Close() }()

	formats := config.Config{}.BankFormats()

	first, err := LoadWithCache(root, formats, cache, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHits != 0 || first.Reparsed != 1 {
		t.Errorf("first run: hits=%d reparsed=%d, want 0/1", first.CacheHits, first.Reparsed)
	}

	second, err := LoadWithCache(root, formats, cache, nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheHits != 1 || second.Reparsed != 0 {
		t.Errorf("second run: hits=%d reparsed=%d, want 1/0", second.CacheHits, second.Reparsed)
	}
	if len(second.Transactions) != 1 {
		t.Fatalf("cached transactions = %d, want 1", len(second.Transactions))
	}

	got := second.Transactions[0]
	want := first.Transactions[0]
	if got.ID != want.ID || !got.Amount.Equal(want.Amount) || !got.Date.Equal(want.Date) || got.Status != want.Status {
		t.Errorf("cached transaction differs: got %+v, want %+v", got, want)
	}
}
