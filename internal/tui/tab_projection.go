package tui

import (
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// panelState tracks the control panel: which slider has focus and
// whether an exact value is being typed.
type panelState struct {
	focus   int
	editing bool
	input   textinput.Model
}

const (
	panelWidth = 64 // outer width of the control card in the wide layout
	bigStep    = 10
)

// focusedParam returns the control that currently has focus.
func (a App) focusedParam() model.Param {
	return a.bounds[a.panel.focus]
}

// setParam stores v for p, clamped to its range, and rebuilds the projection.
func (a *App) setParam(p model.Param, v decimal.Decimal) {
	next := a.inputs.With(p.Key, pipeline.ClampValue(v, p))
	if next.Equal(a.inputs) {
		return
	}
	a.inputs = next
	a.recompute()
}

func (a *App) stepFocused(n int) {
	p := a.focusedParam()
	a.setParam(p, pipeline.StepValue(a.inputs.Get(p.Key), p, n))
}

// updatePanelKeys handles the control panel bindings. ok is false when
// the key is not a panel key.
func (a App) updatePanelKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.panel.focus < len(a.bounds)-1 {
			a.panel.focus++
		}
	case "k", "up":
		if a.panel.focus > 0 {
			a.panel.focus--
		}
	case "l", "+":
		a.stepFocused(1)
	case "h", "-":
		a.stepFocused(-1)
	case "L":
		a.stepFocused(bigStep)
	case "H":
		a.stepFocused(-bigStep)
	case "0":
		p := a.focusedParam()
		a.setParam(p, p.Default)
	case "D":
		a.inputs = pipeline.Clamp(a.cfg.Inputs(), a.bounds)
		a.recompute()
		a.flash = "Reset to saved defaults"
	case "w":
		a.cfg.SetInputs(a.inputs)
		if err := config.Save(a.cfg); err != nil {
			log.Error().Err(err).Msg("saving defaults")
			a.flash = "Save failed: " + err.Error()
		} else {
			a.flash = "Saved as defaults"
		}
	case "enter":
		if a.activeTab != tabProjection {
			return a, nil, false
		}
		m, cmd := a.panelStartEdit()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) panelStartEdit() (tea.Model, tea.Cmd) {
	p := a.focusedParam()

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 12
	ti.Prompt = ""
	ti.Placeholder = p.Min.String() + "-" + p.Max.String()
	ti.SetValue(a.inputs.Get(p.Key).String())
	ti.CursorEnd()
	ti.Focus()

	a.panel.input = ti
	a.panel.editing = true
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updatePanelInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.panel.editing = false
		v, err := parseAmount(a.panel.input.Value())
		if err != nil {
			a.flash = "Not a number: " + strings.TrimSpace(a.panel.input.Value())
			return a, nil
		}
		a.setParam(a.focusedParam(), v)
		return a, nil
	case "esc":
		a.panel.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.panel.input, cmd = a.panel.input.Update(msg)
	return a, cmd
}

// parseAmount accepts plain numbers with optional thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	return decimal.NewFromString(s)
}

// formatParam renders a control's value for display.
func (a App) formatParam(p model.Param, v decimal.Decimal) string {
	if p.Currency {
		return cli.FormatMoney(v, a.currency)
	}
	return cli.FormatNumber(v.IntPart())
}

// sliderPct is v's position in p's range, 0..1.
func sliderPct(p model.Param, v decimal.Decimal) float64 {
	span := p.Max.Sub(p.Min)
	if !span.IsPositive() {
		return 0
	}
	return v.Sub(p.Min).Div(span).InexactFloat64()
}

// renderPanel renders the slider stack for a card of the given outer width.
func (a App) renderPanel(outerW int, hints bool) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	labelW, valueW := 0, 0
	for _, p := range a.bounds {
		labelW = max(labelW, lipgloss.Width(p.Label))
		valueW = max(valueW, lipgloss.Width(a.formatParam(p, p.Max)))
	}
	// marker + label + gap + bar + gap + value
	barW := max(8, innerW-2-labelW-1-2-valueW)

	bg := lipgloss.NewStyle().Background(t.Surface)
	lines := make([]string, 0, 2*len(a.bounds)+1)
	for i, p := range a.bounds {
		v := a.inputs.Get(p.Key)
		focused := i == a.panel.focus

		value := a.formatParam(p, v)
		if focused && a.panel.editing {
			value = a.panel.input.View()
		}
		line := components.Slider(p.Label, value, sliderPct(p, v), focused, labelW, barW)
		lines = append(lines, lipgloss.PlaceHorizontal(innerW, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(t.Surface)))

		if hints {
			lines = append(lines, components.RangeHint(
				a.formatParam(p, p.Min), a.formatParam(p, p.Max), 2+labelW+1))
		}
	}
	lines = append(lines, bg.Render(""))
	lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render("[j/k] focus  [h/l] ±step  [H/L] ±10  [Enter] type  [0] reset"))

	return components.ContentCard("Controls", strings.Join(lines, "\n"), outerW)
}

// projectionSeries converts the cumulative totals for plotting.
func projectionSeries(s model.Series) []components.Series {
	t := theme.Active
	expenses := make([]float64, s.Len())
	sales := make([]float64, s.Len())
	for i := range s.Expenses {
		expenses[i] = s.Expenses[i].InexactFloat64()
		sales[i] = s.Sales[i].InexactFloat64()
	}
	return []components.Series{
		{Name: "Total Expenses", Values: expenses, Color: t.Expenses},
		{Name: "Total Sales", Values: sales, Color: t.Sales},
	}
}

// renderChartCard renders the line chart, legend and break-even note.
// height is the number of plot rows.
func (a App) renderChartCard(outerW, height int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	series := projectionSeries(a.proj.Series)
	marker := -1
	if a.proj.BreakEven.Found {
		marker = a.proj.BreakEven.Index
	}

	label, found := a.proj.BreakEvenLabel()
	noteStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
	if found {
		noteStyle = noteStyle.Foreground(t.BreakEven)
	}

	var b strings.Builder
	b.WriteString(components.LineChart(series, a.proj.Labels, marker, innerW, height))
	b.WriteString("\n")
	markerLabel := ""
	if found {
		markerLabel = "Break-Even"
	}
	b.WriteString(components.ChartLegend(series, markerLabel))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render(cli.BreakEvenNote(label, found, a.inputs.Months)))

	return components.ContentCard("Break-Even Analysis", b.String(), outerW)
}

func (a App) summaryMetrics() []components.Metric {
	t := theme.Active
	sum := pipeline.Summarize(a.proj)

	be := components.Metric{Label: "Break-Even", Value: "None", Color: t.Orange,
		Delta: "within " + cli.FormatMonths(a.inputs.Months)}
	if label, found := a.proj.BreakEvenLabel(); found {
		be = components.Metric{Label: "Break-Even", Value: label, Color: t.BreakEven,
			Delta: "month " + cli.FormatNumber(int64(a.proj.BreakEven.Month()))}
	}

	netColor := t.Green
	if sum.FinalNet.IsNegative() {
		netColor = t.Red
	}

	return []components.Metric{
		be,
		{Label: "Total Expenses", Value: cli.FormatMoney(sum.FinalExpenses, a.currency), Color: t.Expenses,
			Delta: cli.FormatMoney(sum.MonthlyBurn, a.currency) + "/mo burn"},
		{Label: "Total Sales", Value: cli.FormatMoney(sum.FinalSales, a.currency), Color: t.Sales,
			Delta: cli.FormatSignedMoney(sum.MonthlyMargin, a.currency) + "/mo margin"},
		{Label: "Net at Horizon", Value: cli.FormatSignedMoney(sum.FinalNet, a.currency), Color: netColor},
	}
}

// renderProjectionTab lays out metric cards, the control panel and the chart.
// Wide terminals put the panel beside the chart; narrow ones stack them.
func (a App) renderProjectionTab(cw, ch int) string {
	var b strings.Builder

	cards := components.MetricCardRow(a.summaryMetrics(), cw)
	b.WriteString(cards)
	b.WriteString("\n")
	remaining := ch - lipgloss.Height(cards)

	if !a.isCompactLayout() {
		panel := a.renderPanel(panelWidth, true)
		// card border + title + axis + labels + legend + note
		chartH := a.chartHeight(remaining - 7)
		chart := a.renderChartCard(cw-panelWidth, chartH)
		b.WriteString(components.CardRow([]string{panel, chart}))
		return b.String()
	}

	panel := a.renderPanel(cw, false)
	b.WriteString(panel)
	b.WriteString("\n")
	chartH := a.chartHeight(remaining - lipgloss.Height(panel) - 7)
	b.WriteString(a.renderChartCard(cw, chartH))
	return b.String()
}

// chartHeight caps the configured height to the space available.
func (a App) chartHeight(avail int) int {
	h := a.chartH
	if h <= 0 {
		h = 16
	}
	return max(minChartHeight, min(h, avail))
}
