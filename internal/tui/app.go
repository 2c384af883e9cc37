// Package tui provides the interactive Bubble Tea control panel for breakeven.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// Tab indices, in components.Tabs order.
const (
	tabProjection = iota
	tabTable
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	bounds model.Bounds

	// Current control positions and the projection computed from them.
	inputs model.Inputs
	proj   model.Projection

	// Display settings
	start    time.Time
	layout   string
	currency string
	chartH   int

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	// Per-tab state
	panel    panelState
	table    tableState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
	minChartHeight   = 6
	scrollOverhead   = 10 // approximate header + status bar height for half-page calc
)

// NewApp creates the control panel with the given starting inputs.
// Inputs outside the control ranges are clamped.
func NewApp(cfg config.Config, in model.Inputs, start time.Time) App {
	bounds := model.DefaultBounds()

	a := App{
		cfg:       cfg,
		bounds:    bounds,
		inputs:    pipeline.Clamp(in, bounds),
		start:     start,
		layout:    labelLayout(cfg),
		currency:  config.GetCurrency(cfg),
		chartH:    cfg.Chart.Height,
		needSetup: !config.Exists(),
	}
	if !a.inputs.Equal(in) {
		log.Info().Msg("inputs clamped to control ranges")
	}
	if a.needSetup {
		a.setupVals = newSetupValues(cfg)
		a.setupForm = newSetupForm(&a.setupVals)
	}
	a.recompute()
	return a
}

// WithCurrency shows amounts in code for this session only; the config
// keeps its own currency.
func (a App) WithCurrency(code string) App {
	a.currency = code
	return a
}

func labelLayout(cfg config.Config) string {
	if cfg.Chart.LabelFormat == "" {
		return pipeline.DefaultLabelLayout
	}
	return cfg.Chart.LabelFormat
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute rebuilds the whole projection from the current inputs.
func (a *App) recompute() {
	a.proj = pipeline.Build(a.inputs, a.start, a.layout)
	label, found := a.proj.BreakEvenLabel()
	log.Debug().
		Str("startup", a.inputs.StartupExpenses.String()).
		Str("fixed", a.inputs.MonthlyFixedExpenses.String()).
		Str("operational", a.inputs.MonthlyOperationalCosts.String()).
		Str("sales", a.inputs.MonthlySales.String()).
		Int("months", a.inputs.Months).
		Bool("found", found).
		Str("break_even", label).
		Msg("projection rebuilt")

	if maxOff := a.tableMaxOffset(); a.table.offset > maxOff {
		a.table.offset = maxOff
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.panel.editing || a.settings.editing || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab != tabSettings {
				a.stepFocused(1)
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab != tabSettings {
				a.stepFocused(-1)
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Clicks in the header switch tabs.
			if msg.Y <= 1 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Text inputs intercept all keys while editing
		if a.panel.editing {
			return a.updatePanelInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""

		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		} else {
			if next, cmd, ok := a.updatePanelKeys(key); ok {
				return next, cmd
			}
			if a.activeTab == tabTable && a.updateTableKeys(key) {
				return a, nil
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blink for active text inputs
	if a.panel.editing {
		var cmd tea.Cmd
		a.panel.input, cmd = a.panel.input.Update(msg)
		return a, cmd
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.applySetup(); err != nil {
			log.Error().Err(err).Msg("saving setup")
			a.flash = "Setup not saved: " + err.Error()
		} else {
			a.flash = "Saved " + config.Path()
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  breakeven needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	section := func(b *strings.Builder, title string, binds []struct{ key, desc string }) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	section(&b, "Navigation", []struct{ key, desc string }{
		{"p t x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"J K", "Scroll table"},
		{"^d ^u", "Half-page scroll"},
	})
	b.WriteString("\n")
	section(&b, "Controls", []struct{ key, desc string }{
		{"j k", "Focus next / previous control"},
		{"h l", "Decrease / Increase by one step"},
		{"H L", "Decrease / Increase by ten steps"},
		{"wheel", "Adjust focused control"},
		{"Enter", "Type an exact value"},
		{"0", "Reset focused control"},
		{"D", "Reset all controls to saved defaults"},
		{"w", "Write controls as config defaults"},
	})
	b.WriteString("\n")
	section(&b, "General", []struct{ key, desc string }{
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + projection context line
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	startLabel := ""
	if len(a.proj.Labels) > 0 {
		startLabel = a.proj.Labels[0]
	}
	pill := pillStyle.Render(" from ") + accentStyle.Render(startLabel) +
		pillStyle.Render(" │ ") + accentStyle.Render(cli.FormatMonths(a.inputs.Months)) +
		pillStyle.Render(" │ ") + accentStyle.Render(a.currency) +
		pillStyle.Render(" ")

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.breakEvenNote(), a.flash)

	// 3. Content zone height
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabProjection:
		content = a.renderProjectionTab(cw, contentH)
	case tabTable:
		content = a.renderTableTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) breakEvenNote() string {
	label, found := a.proj.BreakEvenLabel()
	return cli.BreakEvenNote(label, found, a.inputs.Months)
}

// ─── Helpers ────────────────────────────────────────────────────

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

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
