package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/logging"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldStartDate = iota
	settingsFieldLabelFormat
	settingsFieldTheme
	settingsFieldCurrency
	settingsFieldChartHeight
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error // last save or validation failure
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldStartDate:
		ti.Placeholder = "2024-11-01 (empty for the current month)"
		ti.SetValue(a.cfg.Chart.StartDate)
	case settingsFieldLabelFormat:
		ti.Placeholder = "Jan 2006"
		ti.SetValue(a.layout)
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(theme.Active.Name)
	case settingsFieldCurrency:
		ti.Placeholder = "EUR, USD, GBP, ..."
		ti.SetValue(a.currency)
	case settingsFieldChartHeight:
		ti.Placeholder = "16 (rows, minimum 6)"
		ti.SetValue(strconv.Itoa(a.chartH))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited field, applies it to the running
// panel and persists it.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldStartDate:
		start := time.Now()
		if val != "" {
			t, err := time.ParseInLocation(config.DateLayout, val, time.Local)
			if err != nil {
				a.settings.saveErr = fmt.Errorf("start date must look like %s", config.DateLayout)
				return
			}
			start = t
		}
		cfg.Chart.StartDate = val
		a.start = start
	case settingsFieldLabelFormat:
		if val == "" {
			val = pipeline.DefaultLabelLayout
		}
		cfg.Chart.LabelFormat = val
		a.layout = val
	case settingsFieldTheme:
		if theme.ByName(val).Name != val {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldCurrency:
		code := strings.ToUpper(val)
		if money.GetCurrency(code) == nil {
			a.settings.saveErr = fmt.Errorf("unknown currency %q", val)
			return
		}
		cfg.Appearance.Currency = code
		a.currency = code
	case settingsFieldChartHeight:
		h, err := strconv.Atoi(val)
		if err != nil || h < minChartHeight {
			a.settings.saveErr = fmt.Errorf("chart height must be a number >= %d", minChartHeight)
			return
		}
		cfg.Chart.Height = h
		a.chartH = h
	}

	a.cfg = cfg
	a.recompute()
	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	startDisplay := a.cfg.Chart.StartDate
	if startDisplay == "" {
		startDisplay = "(current month)"
	}

	fields := []field{
		{"Start Date", startDisplay},
		{"Label Format", a.layout},
		{"Theme", t.Name},
		{"Currency", a.currency},
		{"Chart Height", strconv.Itoa(a.chartH)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Stored defaults vs. the live panel
	def := a.cfg.Inputs()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:        ") + valueStyle.Render(logging.TUILogPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Default startup: ") + valueStyle.Render(cli.FormatMoney(def.StartupExpenses, a.currency)) + "\n")
	infoBody.WriteString(labelStyle.Render("Default sales:   ") + valueStyle.Render(cli.FormatMoney(def.MonthlySales, a.currency)) + "\n")
	infoBody.WriteString(labelStyle.Render("Default horizon: ") + valueStyle.Render(cli.FormatMonths(def.Months)))
	if !def.Equal(a.inputs) {
		infoBody.WriteString("\n")
		infoBody.WriteString(accentStyle.Render("Controls differ from the saved defaults; press [w] on the Projection tab to store them."))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
