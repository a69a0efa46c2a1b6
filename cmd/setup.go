package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"finplan/internal/config"
	"finplan/internal/model"
	"finplan/internal/pipeline"
	"finplan/internal/scenario"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Long:  "Configure finplan and create a starter scenario document.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	stmtDir := cfg.General.StatementsDir
	currency := cfg.General.Currency
	if currency == "" {
		currency = "DKK"
	}

	name := "baseline"
	horizon := "30"
	initialCash := "0"
	livingExpenses := ""
	inflation := "0.02"

	appForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Statements directory").
				Description("Folder with one subdirectory per bank, e.g. statements/nordea/*.csv. Leave empty to skip statement analysis.").
				Value(&stmtDir),
			huh.NewInput().
				Title("Currency").
				Value(&currency),
		),
	)
	if err := appForm.Run(); err != nil {
		return err
	}

	cfg.General.StatementsDir = strings.TrimSpace(stmtDir)
	cfg.General.Currency = strings.TrimSpace(currency)
	if cfg.General.ScenarioDir == "" {
		cfg.General.ScenarioDir = filepath.Join(config.ConfigDir(), "scenarios")
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Seed the living expenses default from actual statement history.
	if cfg.General.StatementsDir != "" {
		if result, err := loadWithOptionalCache(cfg.General.StatementsDir, cfg.BankFormats(), nil); err == nil {
			if avg := pipeline.AverageMonthlyExpenses(result.Transactions); avg > 0 {
				livingExpenses = strconv.FormatFloat(avg*12, 'f', 0, 64)
			}
		}
	}

	scenarioForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario name").
				Value(&name).
				Validate(notEmpty),
			huh.NewInput().
				Title("Horizon (years)").
				Value(&horizon).
				Validate(positiveInt),
			huh.NewInput().
				Title("Cash on hand").
				Value(&initialCash).
				Validate(nonNegativeFloat),
			huh.NewInput().
				Title("Annual living expenses").
				Description("Defaults to 12x your average monthly spend when statements are configured.").
				Value(&livingExpenses).
				Validate(nonNegativeFloat),
			huh.NewInput().
				Title("Annual inflation rate").
				Description("As a fraction, e.g. 0.02 for 2%.").
				Value(&inflation).
				Validate(nonNegativeFloat),
		),
	)
	if err := scenarioForm.Run(); err != nil {
		return err
	}

	horizonYears, _ := strconv.Atoi(strings.TrimSpace(horizon))
	cash, _ := strconv.ParseFloat(strings.TrimSpace(initialCash), 64)
	living, _ := strconv.ParseFloat(strings.TrimSpace(livingExpenses), 64)
	infl, _ := strconv.ParseFloat(strings.TrimSpace(inflation), 64)

	sc := &model.ScenarioConfig{
		Name:                       strings.TrimSpace(name),
		HorizonYears:               horizonYears,
		BaseCurrency:               cfg.General.Currency,
		GeneralAnnualInflationRate: infl,
		InitialCashOnHand:          cash,
		BaseAnnualLivingExpenses:   living,
	}

	path := filepath.Join(cfg.General.ScenarioDir, sc.Name+".json")
	if err := scenario.Save(path, sc); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved scenario to %s\n", path)
	fmt.Printf("  Edit it to add holdings, investments, and properties, then run:\n")
	fmt.Printf("    finplan project --scenario %s\n", sc.Name)
	fmt.Println()
	return nil
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}

func nonNegativeFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}
