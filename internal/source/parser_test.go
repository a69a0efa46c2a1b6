package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"finplan/internal/config"
	"finplan/internal/model"
)

// writeStatement creates a temp CSV and returns a DiscoveredFile for it.
func writeStatement(t *testing.T, bank string, lines ...string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{Path: path, Bank: bank}
}

func nordeaFormat() config.BankFormat {
	return config.Config{}.BankFormats()["nordea"]
}

func danskeFormat() config.BankFormat {
	return config.Config{}.BankFormats()["danske"]
}

func TestParseFile_NordeaDecimalComma(t *testing.T) {
	df := writeStatement(t, "nordea",
		"Booking date;Amount;Title;Balance;Currency",
		"2024/01/22;-218,75;COOP365 SLUSEHOLMEN;12.450,25;DKK",
		"2024/01/19;-1.697,00;IKEA COPENHAGEN;14.147,25;DKK",
	)

	result := ParseFile(df, nordeaFormat())
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(result.Transactions))
	}

	tx := result.Transactions[1]
	if tx.Amount.StringFixed(2) != "-1697.00" {
		t.Errorf("Amount = %s, want -1697.00", tx.Amount)
	}
	if tx.Balance.StringFixed(2) != "14147.25" {
		t.Errorf("Balance = %s, want 14147.25", tx.Balance)
	}
	if tx.Currency != "DKK" {
		t.Errorf("Currency = %q", tx.Currency)
	}
	want := time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)
	if !tx.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", tx.Date, want)
	}
	if tx.Status != model.StatusBooked {
		t.Errorf("Status = %q, want Booked", tx.Status)
	}
}

func TestParseFile_ReservedRows(t *testing.T) {
	df := writeStatement(t, "nordea",
		"Booking date;Amount;Title;Balance;Currency",
		"Reserved;-89,00;Netflix;;DKK",
		"2024/01/20;-50,00;Cafe;;DKK",
	)

	result := ParseFile(df, nordeaFormat())
	if result.Err != nil {
		t.Fatal(result.Err)
	}

	if result.Transactions[0].Status != model.StatusReserved {
		t.Errorf("Status = %q, want Reserved", result.Transactions[0].Status)
	}
	if !result.Transactions[0].Date.IsZero() {
		t.Error("reserved row should have no date")
	}
	if result.Transactions[1].Status != model.StatusBooked {
		t.Errorf("Status = %q, want Booked", result.Transactions[1].Status)
	}
}

func TestParseFile_DanskeCommaDelimited(t *testing.T) {
	df := writeStatement(t, "danske",
		"Booking date,Amount,Title,Balance,Currency",
		"2024-01-21,50000.00,Lønoverførsel,61000.00,DKK",
		"garbage-date,-50.00,Pending thing,,DKK",
	)

	result := ParseFile(df, danskeFormat())
	if result.Err != nil {
		t.Fatal(result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(result.Transactions))
	}
	if result.Transactions[0].Amount.StringFixed(2) != "50000.00" {
		t.Errorf("Amount = %s", result.Transactions[0].Amount)
	}
	if result.Transactions[1].Status != model.StatusPending {
		t.Errorf("Status = %q, want Pending for unparseable date", result.Transactions[1].Status)
	}
}

func TestParseFile_BOMAndMissingAmount(t *testing.T) {
	df := writeStatement(t, "nordea",
		"\xEF\xBB\xBFBooking date;Amount;Title;Balance;Currency",
		"2024/01/22;-10,00;Ok;;DKK",
		"2024/01/23;;No amount;;DKK",
	)

	result := ParseFile(df, nordeaFormat())
	if result.Err != nil {
		t.Fatalf("BOM should be stripped, got %v", result.Err)
	}
	if len(result.Transactions) != 1 {
		t.Errorf("transactions = %d, want 1", len(result.Transactions))
	}
	if result.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", result.SkippedRows)
	}
}

func TestParseFile_MissingColumn(t *testing.T) {
	df := writeStatement(t, "nordea",
		"Wrong;Headers",
		"a;b",
	)

	result := ParseFile(df, nordeaFormat())
	if result.Err == nil {
		t.Fatal("expected error for missing date column")
	}
}

func TestTransactionID_Stable(t *testing.T) {
	df := writeStatement(t, "nordea",
		"Booking date;Amount;Title;Balance;Currency",
		"2024/01/22;-218,75;COOP365;100,00;DKK",
	)

	a := ParseFile(df, nordeaFormat())
	b := ParseFile(df, nordeaFormat())
	if a.Transactions[0].ID != b.Transactions[0].ID {
		t.Error("same row should yield the same ID")
	}

	// Balance must not affect the ID: overlapping exports disagree on it.
	df2 := writeStatement(t, "nordea",
		"Booking date;Amount;Title;Balance;Currency",
		"2024/01/22;-218,75;COOP365;999,00;DKK",
	)
	c := ParseFile(df2, nordeaFormat())
	if a.Transactions[0].ID != c.Transactions[0].ID {
		t.Error("balance change should not change the ID")
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in           string
		decimalComma bool
		want         string
		wantErr      bool
	}{
		{"-1.697,00", true, "-1697.00", false},
		{"218,75", true, "218.75", false},
		{"50000.00", false, "50000.00", false},
		{"-50", false, "-50.00", false},
		{"", false, "", true},
		{"abc", false, "", true},
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.in, tc.decimalComma)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tc.in, err)
			continue
		}
		if got.StringFixed(2) != tc.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got.StringFixed(2), tc.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"nordea", "danske", "unrelated"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range []string{"nordea/a.csv", "nordea/b.csv", "danske/x.csv", "unrelated/y.csv", "nordea/notes.txt"} {
		if err := os.WriteFile(filepath.Join(root, p), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	known := map[string]struct{}{"nordea": {}, "danske": {}}
	files, err := Discover(root, known)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 3 {
		t.Fatalf("files = %d, want 3 (csv under known banks only)", len(files))
	}
	if files[0].Bank != "danske" || files[1].Bank != "nordea" {
		t.Errorf("unexpected order: %+v", files)
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "nope"), nil)
	if err != nil || files != nil {
		t.Errorf("missing root should be empty, got %v / %v", files, err)
	}
}
