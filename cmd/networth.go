package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"finplan/internal/cli"
	"finplan/internal/engine"
	"finplan/internal/scenario"
)

var flagNetWorthAll bool

var networthCmd = &cobra.Command{
	Use:   "networth",
	Short: "Year-by-year net worth table for a scenario",
	RunE:  runNetWorth,
}

func init() {
	networthCmd.Flags().BoolVarP(&flagNetWorthAll, "all", "a", false, "Show every year (default shows every 5th)")
	rootCmd.AddCommand(networthCmd)
}

func runNetWorth(_ *cobra.Command, _ []string) error {
	cfg := loadAppConfig()
	path, err := resolveScenarioPath(cfg)
	if err != nil {
		return err
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	result, err := engine.Project(sc)
	if err != nil {
		return err
	}

	var rows [][]string
	last := len(result.Snapshots) - 1
	for _, s := range result.Snapshots {
		if !flagNetWorthAll && s.Year%5 != 0 && s.Year != last {
			continue
		}
		rows = append(rows, []string{
			cli.FormatYear(s.Year),
			cli.FormatCompact(s.TotalCash),
			cli.FormatCompact(s.TotalInvestments),
			cli.FormatCompact(s.TotalPropertyEquity),
			cli.FormatCompact(s.NetCashFlow),
			cli.FormatMoney(s.NetWorth, ""),
			cli.FormatMoney(s.NetWorthReal, ""),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s (%s)", result.ScenarioName, result.BaseCurrency),
		Headers: []string{"Year", "Cash", "Invest", "Equity", "Flow", "Net Worth", "Real"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
