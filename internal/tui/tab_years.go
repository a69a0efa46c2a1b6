package tui

import (
	"fmt"

	"finplan/internal/cli"
)

func (a App) renderYearsTab() string {
	if a.projectErr != nil {
		return "\n  Scenario failed to load: " + a.projectErr.Error()
	}
	if a.result == nil {
		return "\n  " + a.spinner.View() + " Projecting scenario..."
	}
	if !a.yearsSet {
		return ""
	}
	return a.years.View()
}

func (a App) renderYearsTable() string {
	rows := make([][]string, 0, len(a.result.Snapshots))
	for _, s := range a.result.Snapshots {
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

	title := fmt.Sprintf("%s (%s)", a.result.ScenarioName, a.result.BaseCurrency)
	return cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Year", "Cash", "Invest", "Equity", "Flow", "Net Worth", "Real"},
		Rows:    rows,
	})
}
