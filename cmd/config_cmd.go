// Package cmd implements the finplan CLI commands.
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"finplan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Scenario directory:   %s\n", cfg.General.ScenarioDir)
	if cfg.General.StatementsDir != "" {
		fmt.Printf("    Statements directory: %s\n", cfg.General.StatementsDir)
	} else {
		fmt.Println("    Statements directory: not configured")
	}
	fmt.Printf("    Currency:             %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Banks]")
	formats := cfg.BankFormats()
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := formats[name]
		sep := f.Delimiter
		if sep == "" {
			sep = ","
		}
		fmt.Printf("    %-10s delimiter %q, dates %q\n", name, sep, f.DateLayout)
	}
	fmt.Println()

	fmt.Println("  [Categories]")
	rules := cfg.CategoryRules()
	fmt.Printf("    %d rules configured\n", len(rules))
	fmt.Println()

	fmt.Println("  Run `finplan setup` to reconfigure.")
	return nil
}
