package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"finplan/internal/cli"
	"finplan/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List saved scenario documents",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	cfg := loadAppConfig()

	entries, err := scenario.List(cfg.General.ScenarioDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("\n  No scenarios found in %s\n", cfg.General.ScenarioDir)
		fmt.Println("  Run 'finplan setup' to create one.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := fmt.Sprintf("%d years", e.HorizonYears)
		if e.Err != nil {
			status = "broken: " + e.Err.Error()
		}
		rows = append(rows, []string{e.Name, status, truncate(e.Description, 50)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Scenarios in %s", cfg.General.ScenarioDir),
		Headers: []string{"Name", "Horizon", "Description"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
