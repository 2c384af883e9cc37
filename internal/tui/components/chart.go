package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// Series is one line of a LineChart.
type Series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// cell is one character of the plot grid. owner is the series index
// or one of the negative owner constants below.
type cell struct {
	r     rune
	owner int
}

const (
	ownerNone     = -1
	ownerCrossing = -2
	ownerMarker   = -3
)

// LineChart plots one or more series sharing an x axis of len(labels) points.
// height is the number of plot rows; axis and labels add two more lines.
// marker is the index drawn as a dashed vertical line, or -1 for none.
func LineChart(series []Series, labels []string, marker, width, height int) string {
	n := 0
	for _, s := range series {
		n = max(n, len(s.Values))
	}
	if n == 0 {
		return ""
	}
	if width < 20 || height < 4 {
		lines := make([]string, 0, len(series))
		for _, s := range series {
			lines = append(lines, Sparkline(s.Values, s.Color))
		}
		return strings.Join(lines, "\n")
	}

	t := theme.Active

	maxVal := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			maxVal = math.Max(maxVal, v)
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: nice tick step, at most one labelled row in two.
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))
	rowsPerTick := max(1, (height-1)/numIntervals)
	rows := rowsPerTick*numIntervals + 1 // row 0 is the zero line

	yLabelW := max(4, len(cli.FormatCompact(ceiling))+1)
	chartW := max(5, width-yLabelW-1)

	col := func(i int) int {
		if n == 1 {
			return 0
		}
		return int(math.Round(float64(i) * float64(chartW-1) / float64(n-1)))
	}
	row := func(v float64) int {
		r := int(math.Round(v / ceiling * float64(rows-1)))
		return min(max(r, 0), rows-1)
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, chartW)
		for c := range grid[r] {
			grid[r][c] = cell{r: ' ', owner: ownerNone}
		}
	}
	put := func(r, c int, ch rune, owner int) {
		cur := grid[r][c]
		if cur.owner >= 0 && cur.owner != owner {
			grid[r][c] = cell{r: '◆', owner: ownerCrossing}
			return
		}
		if cur.owner == ownerCrossing {
			return
		}
		grid[r][c] = cell{r: ch, owner: owner}
	}

	lastCol := col(n - 1)
	for si, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		prev := -1
		for c := 0; c <= lastCol; c++ {
			r := row(interpolate(s.Values, float64(c)*float64(n-1)/float64(max(1, lastCol))))
			switch {
			case prev < 0 || r == prev:
				put(r, c, '─', si)
			case r > prev:
				for k := prev + 1; k < r; k++ {
					put(k, c, '│', si)
				}
				put(r, c, '╭', si)
				put(prev, c, '╯', si)
			default:
				for k := r + 1; k < prev; k++ {
					put(k, c, '│', si)
				}
				put(r, c, '╰', si)
				put(prev, c, '╮', si)
			}
			prev = r
		}
	}

	if marker >= 0 && marker < n {
		mc := col(marker)
		for r := range grid {
			if grid[r][mc].owner == ownerNone {
				grid[r][mc] = cell{r: '┆', owner: ownerMarker}
			}
		}
	}

	bg := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	styleFor := func(owner int) lipgloss.Style {
		switch {
		case owner >= 0:
			return lipgloss.NewStyle().Foreground(series[owner].Color).Background(t.Surface)
		case owner == ownerCrossing:
			return lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
		case owner == ownerMarker:
			return lipgloss.NewStyle().Foreground(t.BreakEven).Background(t.Surface)
		}
		return bg
	}

	var b strings.Builder
	for r := rows - 1; r >= 0; r-- {
		label := ""
		axis := "│"
		if r%rowsPerTick == 0 {
			label = cli.FormatCompact(tickStep * float64(r/rowsPerTick))
			axis = "┤"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render(axis))

		// Render runs of same-owner cells with one style.
		var run strings.Builder
		runOwner := grid[r][0].owner
		for c := 0; c < chartW; c++ {
			if grid[r][c].owner != runOwner {
				b.WriteString(styleFor(runOwner).Render(run.String()))
				run.Reset()
				runOwner = grid[r][c].owner
			}
			run.WriteRune(grid[r][c].r)
		}
		b.WriteString(styleFor(runOwner).Render(run.String()))
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", chartW)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(bg.Render(strings.Repeat(" ", yLabelW+1)))
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(labelStyle.Render(xAxisLabels(labels, col, chartW)))
	}

	return b.String()
}

// ChartLegend renders a one-line key for the series and the marker.
func ChartLegend(series []Series, markerLabel string) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Background(t.Surface).Render("   ")
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	parts := make([]string, 0, len(series)+1)
	for _, s := range series {
		sw := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Bold(true)
		parts = append(parts, sw.Render("━━")+text.Render(" "+s.Name))
	}
	if markerLabel != "" {
		mk := lipgloss.NewStyle().Foreground(t.BreakEven).Background(t.Surface)
		parts = append(parts, mk.Render("┆")+text.Render(" "+markerLabel))
	}
	return strings.Join(parts, sep)
}

// xAxisLabels lays out labels under their columns, skipping any that
// would overlap the previous one. The last label is always kept.
func xAxisLabels(labels []string, col func(int) int, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	n := len(labels)

	last := []rune(labels[n-1])
	finalPos := max(0, min(col(n-1), width-len(last)))

	lastEnd := -1
	for i := 0; i < n-1; i++ {
		lbl := []rune(labels[i])
		pos := col(i)
		if pos <= lastEnd || pos+len(lbl) >= finalPos {
			continue
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	copy(buf[finalPos:], last)

	return strings.TrimRight(string(buf), " ")
}

func interpolate(values []float64, x float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	i := int(math.Floor(x))
	if i >= len(values)-1 {
		return values[len(values)-1]
	}
	if i < 0 {
		return values[0]
	}
	frac := x - float64(i)
	return values[i] + (values[i+1]-values[i])*frac
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
