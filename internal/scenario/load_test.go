package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"finplan/internal/model"
)

const sampleDoc = `{
  "name": "Heavy Stocks",
  "description": "Aggressive equity allocation",
  "horizon_years": 25,
  "base_currency": "DKK",
  "general_annual_inflation_rate": 0.02,
  "initial_cash_on_hand": 50000,
  "base_annual_living_expenses": 30000,
  "cash_holdings": [],
  "stock_investments": [
    {
      "name": "Global Index",
      "initial_investment": 200000,
      "annual_contribution": 60000,
      "expected_annual_return": 0.07
    }
  ],
  "real_estate_investments": [],
  "income_sources": [
    {
      "name": "Salary",
      "initial_annual_income": 540000,
      "expected_annual_growth_rate": 0.025
    }
  ],
  "major_expenses": [
    {"name": "Car", "year_of_expense": 5, "amount": 150000}
  ]
}`

func TestParse_SampleDocument(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Name != "Heavy Stocks" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.HorizonYears != 25 {
		t.Errorf("HorizonYears = %d, want 25", cfg.HorizonYears)
	}
	if cfg.SchemaVersion != model.CurrentSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d (unversioned docs upgraded)", cfg.SchemaVersion, model.CurrentSchemaVersion)
	}
	if len(cfg.StockInvestments) != 1 || cfg.StockInvestments[0].ExpectedAnnualReturn != 0.07 {
		t.Errorf("StockInvestments = %+v", cfg.StockInvestments)
	}
}

func TestParse_SeedsCashHoldingFromInitialCash(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.CashHoldings) != 1 {
		t.Fatalf("CashHoldings = %+v, want one seeded holding", cfg.CashHoldings)
	}
	h := cfg.CashHoldings[0]
	if h.Name != DefaultCashHoldingName || h.InitialAmount != 50000 {
		t.Errorf("seeded holding = %+v", h)
	}
}

func TestParse_RejectsInvalidDocument(t *testing.T) {
	if _, err := Parse([]byte(`{"name":"bad","horizon_years":0}`)); err == nil {
		t.Fatal("expected validation error for zero horizon")
	}
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}
}

func TestParse_RejectsNewerSchemaVersion(t *testing.T) {
	doc := `{"schema_version": 99, "name": "future", "horizon_years": 10}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected error for unsupported schema version")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios", "test.json")

	cfg, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != cfg.Name || loaded.HorizonYears != cfg.HorizonYears {
		t.Errorf("round trip changed config: %+v", loaded)
	}
	if loaded.SchemaVersion != model.CurrentSchemaVersion {
		t.Errorf("SchemaVersion = %d after save", loaded.SchemaVersion)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "Heavy Stocks" || entries[0].Err != nil {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Err == nil {
		t.Error("broken document should carry an error")
	}
}
