package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"finplan/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Years", Key: 'y'},
	{Name: "Spending", Key: 's'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Highlight the shortcut letter in the name.
		keyPos := strings.IndexRune(strings.ToLower(tab.Name), tab.Key)
		if keyPos >= 0 {
			parts = append(parts,
				inactiveStyle.Render(tab.Name[:keyPos])+
					dimKeyStyle.Render("[")+keyStyle.Render(string(tab.Name[keyPos]))+dimKeyStyle.Render("]")+
					inactiveStyle.Render(tab.Name[keyPos+1:]))
		} else {
			parts = append(parts,
				inactiveStyle.Render(tab.Name)+
					dimKeyStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimKeyStyle.Render("]"))
		}
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
