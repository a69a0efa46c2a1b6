// Package tui provides the interactive Bubble Tea dashboard for finplan.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finplan/internal/categorize"
	"finplan/internal/config"
	"finplan/internal/engine"
	"finplan/internal/model"
	"finplan/internal/pipeline"
	"finplan/internal/scenario"
	"finplan/internal/store"
	"finplan/internal/tui/components"
	"finplan/internal/tui/theme"
)

// ProjectionMsg is sent when the scenario projection finishes.
type ProjectionMsg struct {
	Result *engine.Result
	Err    error
}

// StatementsMsg is sent when the statement loading pipeline finishes.
type StatementsMsg struct {
	Transactions []model.Transaction
	LoadTime     time.Duration
	Err          error
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	scenarioPath  string
	statementsDir string
	cfg           config.Config

	// Data
	result     *engine.Result
	projectErr error
	txs        []model.Transaction
	categories []model.CategoryTotal
	txLoaded   bool
	txLoadTime time.Duration
	txErr      error

	// UI state
	width     int
	height    int
	activeTab int
	spinner   spinner.Model
	years     viewport.Model
	yearsSet  bool
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(scenarioPath, statementsDir string, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		scenarioPath:  scenarioPath,
		statementsDir: statementsDir,
		cfg:           cfg,
		spinner:       sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		projectCmd(a.scenarioPath),
		loadStatementsCmd(a.statementsDir, a.cfg),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.years.Width = a.contentWidth()
		a.years.Height = a.contentHeight()
		if a.result != nil {
			a.years.SetContent(a.renderYearsTable())
			a.yearsSet = true
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		// Years tab scrolls through the snapshot table.
		if a.activeTab == 1 {
			var cmd tea.Cmd
			a.years, cmd = a.years.Update(msg)
			return a, cmd
		}
		return a, nil

	case ProjectionMsg:
		a.result = msg.Result
		a.projectErr = msg.Err
		if a.result != nil && a.width > 0 {
			a.years.Width = a.contentWidth()
			a.years.Height = a.contentHeight()
			a.years.SetContent(a.renderYearsTable())
			a.yearsSet = true
		}
		return a, nil

	case StatementsMsg:
		a.txLoaded = true
		a.txs = msg.Transactions
		a.txLoadTime = msg.LoadTime
		a.txErr = msg.Err
		a.categories = pipeline.AggregateCategories(a.txs, time.Time{}, time.Time{})
		return a, nil

	case spinner.TickMsg:
		if a.result == nil || !a.txLoaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) contentHeight() int {
	// Header and status bar take one line each plus spacing.
	ch := a.height - 4
	if ch < minContentHeight {
		ch = minContentHeight
	}
	return ch
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}

	t := theme.Active

	header := components.RenderTabBar(a.activeTab)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(a.contentWidth())
	case 1:
		content = a.renderYearsTab()
	case 2:
		content = a.renderSpendingTab(a.contentWidth())
	}

	content = padHeight(truncateHeight(content, a.contentHeight()), a.contentHeight())

	statusStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	status := statusStyle.Render(" o/y/s tabs · j/k scroll · q quit")

	return header + "\n\n" + content + "\n" + status
}

func projectCmd(scenarioPath string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := scenario.Load(scenarioPath)
		if err != nil {
			return ProjectionMsg{Err: err}
		}
		result, err := engine.Project(cfg)
		return ProjectionMsg{Result: result, Err: err}
	}
}

// loadStatementsCmd runs the statement pipeline in the background. The cache
// path is shared with the CLI commands, so a warmed cache loads instantly.
func loadStatementsCmd(statementsDir string, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		formats := cfg.BankFormats()

		var txs []model.Transaction
		cache, err := store.Open(pipeline.CachePath())
		if err == nil {
			cr, loadErr := pipeline.LoadWithCache(statementsDir, formats, cache, nil)
			_ = cache.Close()
			if loadErr == nil {
				txs = cr.Transactions
			}
		}
		if txs == nil {
			result, err := pipeline.Load(statementsDir, formats, nil)
			if err != nil {
				return StatementsMsg{LoadTime: time.Since(start), Err: err}
			}
			txs = result.Transactions
		}

		categorize.New(cfg.CategoryRules()).Apply(txs)
		return StatementsMsg{Transactions: txs, LoadTime: time.Since(start)}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
