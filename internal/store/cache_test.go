package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finplan/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := openTestCache(t)

	saved := []model.Transaction{
		{
			ID:          "abc123",
			Bank:        "nordea",
			Date:        time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
			Description: "COOP365",
			Amount:      decimal.RequireFromString("-218.75"),
			Balance:     decimal.RequireFromString("1000.00"),
			Currency:    "DKK",
			Status:      model.StatusBooked,
			Category:    "Groceries",
		},
		{
			ID:          "def456",
			Bank:        "nordea",
			Description: "Pending card payment",
			Amount:      decimal.RequireFromString("-50.00"),
			Status:      model.StatusReserved,
		},
	}

	if err := c.SaveFile("/st/nordea/jan.csv", "nordea", 42, 1024, saved); err != nil {
		t.Fatal(err)
	}

	loaded, err := c.LoadFiles([]string{"/st/nordea/jan.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d transactions, want 2", len(loaded))
	}

	byID := make(map[string]model.Transaction, len(loaded))
	for _, tx := range loaded {
		byID[tx.ID] = tx
	}

	got, ok := byID["abc123"]
	if !ok {
		t.Fatal("booked transaction missing from cache")
	}
	if got.Status != model.StatusBooked {
		t.Errorf("Status = %q, want %q", got.Status, model.StatusBooked)
	}
	if got.Category != "Groceries" || got.Currency != "DKK" {
		t.Errorf("Category/Currency = %q/%q, want Groceries/DKK", got.Category, got.Currency)
	}
	if !got.Amount.Equal(saved[0].Amount) || !got.Balance.Equal(saved[0].Balance) {
		t.Errorf("amounts differ: got %s/%s", got.Amount, got.Balance)
	}
	if !got.Date.Equal(saved[0].Date) {
		t.Errorf("Date = %v, want %v", got.Date, saved[0].Date)
	}

	reserved, ok := byID["def456"]
	if !ok {
		t.Fatal("reserved transaction missing from cache")
	}
	if reserved.Status != model.StatusReserved {
		t.Errorf("reserved Status = %q, want %q", reserved.Status, model.StatusReserved)
	}
	if !reserved.Date.IsZero() {
		t.Errorf("reserved Date = %v, want zero", reserved.Date)
	}
}

func TestSaveFileReplacesPrevious(t *testing.T) {
	c := openTestCache(t)

	first := []model.Transaction{
		{ID: "a", Bank: "nordea", Description: "old", Amount: decimal.New(-1, 0), Status: model.StatusBooked},
		{ID: "b", Bank: "nordea", Description: "old", Amount: decimal.New(-2, 0), Status: model.StatusBooked},
	}
	if err := c.SaveFile("/st/nordea/jan.csv", "nordea", 1, 10, first); err != nil {
		t.Fatal(err)
	}

	second := []model.Transaction{
		{ID: "c", Bank: "nordea", Description: "new", Amount: decimal.New(-3, 0), Status: model.StatusBooked},
	}
	if err := c.SaveFile("/st/nordea/jan.csv", "nordea", 2, 12, second); err != nil {
		t.Fatal(err)
	}

	loaded, err := c.LoadFiles([]string{"/st/nordea/jan.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].ID != "c" {
		t.Fatalf("loaded = %+v, want the single replacement row", loaded)
	}

	tracked, err := c.GetTrackedFiles()
	if err != nil {
		t.Fatal(err)
	}
	fi := tracked["/st/nordea/jan.csv"]
	if fi.MtimeNs != 2 || fi.SizeBytes != 12 {
		t.Errorf("tracker = %+v, want mtime 2 size 12", fi)
	}
}
