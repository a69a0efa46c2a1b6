package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"finplan/internal/cli"
	"finplan/internal/tui/components"
	"finplan/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	if a.projectErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render("Scenario failed to load: "+a.projectErr.Error())
	}
	if a.result == nil {
		return "\n  " + a.spinner.View() + " Projecting scenario..."
	}

	s := a.result.Summary
	currency := a.result.BaseCurrency

	deficitDetail := "no deficit years"
	deficitTone := components.ToneNeutral
	if s.DeficitYears > 0 {
		deficitDetail = fmt.Sprintf("%d deficit years", s.DeficitYears)
		deficitTone = components.ToneWarn
	}

	cards := []components.Metric{
		{Label: "Ending Net Worth", Value: cli.FormatMoney(s.EndingNetWorth, currency),
			Detail: cli.FormatMoney(s.EndingNetWorthReal, currency) + " real",
			Tone:   components.ToneForAmount(s.EndingNetWorth)},
		{Label: "Peak Net Worth", Value: cli.FormatMoney(s.PeakNetWorth, currency),
			Detail: cli.FormatYear(s.PeakYear)},
		{Label: "Horizon", Value: fmt.Sprintf("%d years", s.HorizonYears),
			Detail: deficitDetail, Tone: deficitTone},
	}

	out := components.MetricCardRow(cards, cw)

	// Net worth trajectory.
	values := make([]float64, len(a.result.Snapshots))
	labels := make([]string, len(a.result.Snapshots))
	for i, snap := range a.result.Snapshots {
		values[i] = snap.NetWorth
		labels[i] = fmt.Sprintf("%d", snap.Year)
	}

	chartH := a.contentHeight() - lipgloss.Height(out) - 4
	if chartH < 4 {
		chartH = 4
	}
	if chartH > 14 {
		chartH = 14
	}
	chart := components.BarChart(values, labels, components.CardInnerWidth(cw), chartH)
	out += "\n" + components.ContentCard("Net Worth by Year", chart, cw)

	if len(s.PropertySales) > 0 {
		var b []string
		for _, sale := range s.PropertySales {
			b = append(b, fmt.Sprintf("%s: %s net proceeds (%s value, %s costs, %s mortgage)",
				sale.Name,
				cli.FormatMoney(sale.NetProceeds, currency),
				cli.FormatCompact(sale.GrossValue),
				cli.FormatCompact(sale.SellingCosts),
				cli.FormatCompact(sale.MortgageBalance)))
		}
		out += "\n" + components.ContentCard("Sale at End of Horizon", joinLines(b), cw)
	}

	return out
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
