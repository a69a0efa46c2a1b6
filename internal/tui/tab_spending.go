package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"finplan/internal/cli"
	"finplan/internal/tui/components"
	"finplan/internal/tui/theme"
)

const maxSpendingRows = 15

func (a App) renderSpendingTab(cw int) string {
	t := theme.Active

	if !a.txLoaded {
		return "\n  " + a.spinner.View() + " Loading statements..."
	}
	if a.txErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render("Statements failed to load: "+a.txErr.Error())
	}
	if len(a.categories) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n  " + dim.Render("No statements found under "+a.statementsDir)
	}

	cats := a.categories
	if len(cats) > maxSpendingRows {
		cats = cats[:maxSpendingRows]
	}

	maxTotal, _ := cats[0].Total.Float64()
	labelW := 0
	for _, c := range cats {
		if len(c.Category) > labelW {
			labelW = len(c.Category)
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	barSpace := components.CardInnerWidth(cw) - labelW - 22
	if barSpace < 10 {
		barSpace = 10
	}

	body := ""
	for i, c := range cats {
		if i > 0 {
			body += "\n"
		}
		total, _ := c.Total.Float64()
		bar := cli.RenderHorizontalBar(total, maxTotal, barSpace)
		body += fmt.Sprintf("%s %s %s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, c.Category)),
			barStyle.Render(fmt.Sprintf("%-*s", barSpace, bar)),
			valueStyle.Render(cli.FormatDecimal(c.Total)),
			labelStyle.Render(fmt.Sprintf("%4.1f%%", c.SharePercent)),
		)
	}

	title := fmt.Sprintf("Spending by Category (%d transactions, loaded in %.1fs)",
		len(a.txs), a.txLoadTime.Seconds())
	return components.ContentCard(title, body, cw)
}
