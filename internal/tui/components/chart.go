package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"finplan/internal/tui/theme"
)

// BarChart renders a vertical bar chart of a signed series. Values below
// zero hang under the axis in red, so net worth curves that dip negative
// stay readable.
func BarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	maxVal, minVal := 0.0, 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	if maxVal == 0 && minVal == 0 {
		maxVal = 1
	}

	tickStep := chartTickStep(math.Max(maxVal, -minVal))
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	floor := math.Floor(minVal/tickStep) * tickStep

	yLabelW := len(formatChartLabel(ceiling))
	if l := len("-" + formatChartLabel(-floor)); floor < 0 && l > yLabelW {
		yLabelW = l
	}
	if yLabelW < 4 {
		yLabelW = 4
	}

	span := ceiling - floor
	if span == 0 {
		span = 1
	}

	posRows := int(math.Round(float64(height) * ceiling / span))
	negRows := height - posRows
	if ceiling > 0 && posRows < 1 {
		posRows = 1
		negRows = height - 1
	}
	if floor < 0 && negRows < 1 {
		negRows = 1
		posRows = height - 1
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := 2
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	} else {
		barW = chartW
	}
	if barW < 1 {
		// Downsample to fit: keep first, last, and evenly spaced middles.
		maxN := (chartW + 1) / 2
		if maxN < 2 {
			maxN = 2
		}
		sampled := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (maxN - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = maxN
		barW = 1
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	posStyle := lipgloss.NewStyle().Foreground(t.Accent)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder

	// Positive rows, top down.
	for row := posRows; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(posRows)
		rowBottom := ceiling * float64(row-1) / float64(posRows)

		label := ""
		if row == posRows {
			label = formatChartLabel(ceiling)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			switch {
			case v >= rowTop:
				b.WriteString(posStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(posStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// Zero axis.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	if negRows > 0 {
		b.WriteString("\n")
	}

	// Negative rows, shallow to deep. Depth renders as full blocks; partial
	// fill below the axis reads wrong with the block glyph set, so any
	// crossing into a row fills it.
	for row := 1; row <= negRows; row++ {
		rowShallow := floor * float64(row-1) / float64(negRows)
		rowDeep := floor * float64(row) / float64(negRows)

		label := ""
		if row == negRows {
			label = "-" + formatChartLabel(-floor)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			if v < rowShallow && v <= rowDeep+(rowShallow-rowDeep)/2 {
				b.WriteString(negStyle.Render(strings.Repeat("█", barW)))
			} else if v < rowShallow {
				b.WriteString(negStyle.Render(strings.Repeat("▀", barW)))
			} else {
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		if row < negRows {
			b.WriteString("\n")
		}
	}

	// X-axis labels.
	if len(labels) == n && n > 0 {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}

		minSpacing := 8
		labelStep := 1
		if axisLen > 0 {
			labelStep = (n*minSpacing)/axisLen + 1
		}

		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			pos := i * (barW + gap)
			lbl := labels[i]
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}

		b.WriteString("\n")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
