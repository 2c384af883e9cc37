package components

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider renders one control of the parameter panel:
//
//	▸ Monthly Sales              ███████░░░░░░░░░  €20,000
//
// pct is the value's position within its range, 0..1.
func Slider(label, value string, pct float64, focused bool, labelW, barWidth int) string {
	t := theme.Active

	pct = min(max(pct, 0), 1)

	fill := t.Accent
	if focused {
		fill = t.AccentBright
	}
	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.Full = '━'
	bar.Empty = '─'
	bar.EmptyColor = string(t.TextDim)

	surface := t.Surface
	marker := "  "
	if focused {
		surface = t.SurfaceBright
		marker = "▸ "
	}

	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(surface).Bold(focused)
	spaceStyle := lipgloss.NewStyle().Background(surface)
	if focused {
		labelStyle = labelStyle.Foreground(t.Accent).Bold(true)
	}

	return markerStyle.Render(marker) +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render("  ") +
		valueStyle.Render(value)
}

// RangeHint renders the "min … max" caption under a focused slider.
func RangeHint(lo, hi string, indent int) string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	return style.Render(fmt.Sprintf("%*s%s … %s", indent, "", lo, hi))
}
