package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"finplan/internal/cli"
	"finplan/internal/engine"
	"finplan/internal/scenario"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a scenario projection and show the summary",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
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
	s := result.Summary
	currency := result.BaseCurrency
	if currency == "" {
		currency = cfg.General.Currency
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %d years", s.ScenarioName, s.HorizonYears)))
	fmt.Println()

	rows := [][]string{
		{"Ending Net Worth", cli.FormatMoney(s.EndingNetWorth, currency)},
		{"Ending Net Worth (real)", cli.FormatMoney(s.EndingNetWorthReal, currency)},
		{"Peak Net Worth", fmt.Sprintf("%s  (%s)", cli.FormatMoney(s.PeakNetWorth, currency), cli.FormatYear(s.PeakYear))},
		{"Deficit Years", cli.FormatNumber(int64(s.DeficitYears))},
	}

	if len(s.PropertySales) > 0 {
		rows = append(rows, []string{"---"})
		for _, sale := range s.PropertySales {
			rows = append(rows, []string{
				"Sell " + sale.Name,
				cli.FormatMoney(sale.NetProceeds, currency) + " net",
			})
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Outcome", "Value"},
		Rows:    rows,
	}))

	// Net worth trajectory, year 0 to horizon.
	values := make([]float64, len(result.Snapshots))
	for i, snap := range result.Snapshots {
		values[i] = snap.NetWorth
	}
	fmt.Printf("\n  Net worth  %s\n", cli.RenderSparkline(values))
	fmt.Printf("  %s to %s over %d years\n\n",
		cli.FormatCompact(values[0]), cli.FormatCompact(values[len(values)-1]), s.HorizonYears)

	return nil
}
