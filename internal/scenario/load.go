package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"finplan/internal/model"
)

// DefaultCashHoldingName is given to the cash holding synthesized from
// initial_cash_on_hand when a scenario configures none. The first holding
// absorbs each year's net cash flow.
const DefaultCashHoldingName = "Primary Liquid Cash"

// Load reads and validates a scenario document from path.
func Load(path string) (*model.ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*model.ScenarioConfig, error) {
	var cfg model.ScenarioConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if cfg.SchemaVersion == 0 {
		cfg.SchemaVersion = model.CurrentSchemaVersion
	}
	if cfg.SchemaVersion > model.CurrentSchemaVersion {
		return nil, fmt.Errorf("scenario schema version %d is newer than supported version %d",
			cfg.SchemaVersion, model.CurrentSchemaVersion)
	}

	// initial_cash_on_hand seeds the first cash holding when none is
	// configured, so bare scenarios still have somewhere for cash flow to go.
	if len(cfg.CashHoldings) == 0 && cfg.InitialCashOnHand > 0 {
		cfg.CashHoldings = []model.CashHolding{{
			Name:          DefaultCashHoldingName,
			InitialAmount: cfg.InitialCashOnHand,
		}}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a scenario document as indented JSON, stamping the current
// schema version.
func Save(path string, cfg *model.ScenarioConfig) error {
	cfg.SchemaVersion = model.CurrentSchemaVersion
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating scenario dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}

// ListEntry describes one scenario document found in a directory.
type ListEntry struct {
	Path         string
	Name         string
	Description  string
	HorizonYears int
	Err          error // non-nil if the document failed to load
}

// List loads every *.json scenario document under dir, sorted by file name.
// Broken documents are reported per entry rather than aborting the listing.
func List(dir string) ([]ListEntry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	entries := make([]ListEntry, 0, len(paths))
	for _, p := range paths {
		entry := ListEntry{Path: p}
		cfg, err := Load(p)
		if err != nil {
			entry.Err = err
			entry.Name = strings.TrimSuffix(filepath.Base(p), ".json")
		} else {
			entry.Name = cfg.Name
			entry.Description = cfg.Description
			entry.HorizonYears = cfg.HorizonYears
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
