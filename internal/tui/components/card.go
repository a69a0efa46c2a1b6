// Package components provides reusable TUI widgets for the finplan dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"finplan/internal/tui/theme"
)

// Tone classifies a metric so its value can be colored by meaning rather
// than position: surpluses green, shortfalls red, cautions yellow.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
	ToneWarn
)

// ToneForAmount maps the sign of a monetary amount to a tone. Zero is
// neutral so an empty portfolio does not render as a gain.
func ToneForAmount(v float64) Tone {
	switch {
	case v > 0:
		return ToneGood
	case v < 0:
		return ToneBad
	default:
		return ToneNeutral
	}
}

func (tone Tone) color(t theme.Theme) lipgloss.Color {
	switch tone {
	case ToneGood:
		return t.Green
	case ToneBad:
		return t.Red
	case ToneWarn:
		return t.Yellow
	default:
		return t.TextPrimary
	}
}

// Metric is one headline figure on the dashboard: a label, the formatted
// amount, and an optional detail line under it.
type Metric struct {
	Label  string
	Value  string
	Detail string
	Tone   Tone
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders one metric in a bordered card. outerWidth is the total
// rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(m.Tone.color(t)).
		Bold(true)

	detailStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	content := labelStyle.Render(m.Label) + "\n" +
		valueStyle.Render(m.Value)
	if m.Detail != "" {
		content += "\n" + detailStyle.Render(m.Detail)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders metrics side by side, filling totalWidth exactly.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))

	var rendered []string
	for i, m := range metrics {
		rendered = append(rendered, MetricCard(m, widths[i]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
