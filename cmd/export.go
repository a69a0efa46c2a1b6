package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"finplan/internal/engine"
	"finplan/internal/scenario"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export projection snapshots as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
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

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{
		"year", "total_cash", "total_investments", "total_property_equity",
		"total_income", "total_expenses", "net_cash_flow",
		"net_worth", "net_worth_real",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	for _, s := range result.Snapshots {
		row := []string{
			strconv.Itoa(s.Year),
			f(s.TotalCash), f(s.TotalInvestments), f(s.TotalPropertyEquity),
			f(s.TotalIncome), f(s.TotalExpenses), f(s.NetCashFlow),
			f(s.NetWorth), f(s.NetWorthReal),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	if flagExportOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d snapshots to %s\n", len(result.Snapshots), flagExportOut)
	}
	return nil
}
