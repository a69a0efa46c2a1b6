package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"finplan/internal/categorize"
	"finplan/internal/config"
	"finplan/internal/pipeline"
	"finplan/internal/store"
)

var (
	flagScenario      string
	flagStatementsDir string
	flagNoCache       bool
	flagQuiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Personal finance scenario planner",
	Long:  "Project multi-year financial scenarios and analyze bank statements.",
	RunE:  runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario name or path to a scenario JSON file")
	rootCmd.PersistentFlags().StringVar(&flagStatementsDir, "statements-dir", "", "Directory with bank statement exports")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadAppConfig loads the TOML config, falling back to defaults.
func loadAppConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// resolveScenarioPath turns the --scenario flag into a file path. A bare
// name resolves under the configured scenario directory; anything with a
// path separator or .json suffix is used as-is.
func resolveScenarioPath(cfg config.Config) (string, error) {
	if flagScenario == "" {
		return "", fmt.Errorf("no scenario given: use --scenario or run 'finplan setup'")
	}
	if strings.ContainsRune(flagScenario, os.PathSeparator) || strings.HasSuffix(flagScenario, ".json") {
		return flagScenario, nil
	}
	return filepath.Join(cfg.General.ScenarioDir, flagScenario+".json"), nil
}

func statementsDir(cfg config.Config) string {
	if flagStatementsDir != "" {
		return flagStatementsDir
	}
	return cfg.General.StatementsDir
}

// loadTransactions is the shared statement loading path used by all
// statement commands. Uses the SQLite cache when available, and applies
// category rules to the result.
func loadTransactions(cfg config.Config) (*pipeline.LoadResult, error) {
	dir := statementsDir(cfg)
	if dir == "" {
		return nil, fmt.Errorf("no statements directory configured: use --statements-dir or run 'finplan setup'")
	}

	formats := cfg.BankFormats()

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
	}

	result, err := loadWithOptionalCache(dir, formats, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Loaded %d transactions from %d files    \n",
			len(result.Transactions), result.ParsedFiles)
	}
	if result.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d files could not be parsed\n", result.FileErrors)
	}

	categorize.New(cfg.CategoryRules()).Apply(result.Transactions)
	return result, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func loadWithOptionalCache(dir string, formats map[string]config.BankFormat, progressFn pipeline.ProgressFunc) (*pipeline.LoadResult, error) {
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(dir, formats, cache, progressFn)
			if err == nil {
				return &cr.LoadResult, nil
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "\n  Cache error, falling back to full parse\n")
			}
		}
	}

	return pipeline.Load(dir, formats, progressFn)
}
