package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// tableState holds the month table scroll position.
type tableState struct {
	offset int
}

// header (2) + status bar (1) + card border (2) + title (1) + column header (2) + footer (2)
const tableOverhead = 10

func (a App) tableVisibleRows() int {
	return max(3, a.height-tableOverhead)
}

func (a App) tableMaxOffset() int {
	return max(0, a.proj.Series.Len()-a.tableVisibleRows())
}

// updateTableKeys scrolls the month table. It reports whether key was handled.
func (a *App) updateTableKeys(key string) bool {
	halfPage := max(1, (a.height-scrollOverhead)/2)
	switch key {
	case "J":
		a.table.offset++
	case "K":
		a.table.offset--
	case "ctrl+d":
		a.table.offset += halfPage
	case "ctrl+u":
		a.table.offset -= halfPage
	case "g":
		a.table.offset = 0
	case "G":
		a.table.offset = a.tableMaxOffset()
	case "b":
		// Jump to the break-even row.
		if a.proj.BreakEven.Found {
			a.table.offset = a.proj.BreakEven.Index - a.tableVisibleRows()/2
		}
	default:
		return false
	}
	a.table.offset = min(max(a.table.offset, 0), a.tableMaxOffset())
	return true
}

func (a App) renderTableTab(cw, _ int) string {
	t := theme.Active
	s := a.proj.Series

	if s.Len() == 0 {
		return components.ContentCard("Monthly Projection",
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No months to project"), cw)
	}

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	expStyle := lipgloss.NewStyle().Foreground(t.Expenses).Background(t.Surface)
	salesStyle := lipgloss.NewStyle().Foreground(t.Sales).Background(t.Surface)
	hlStyle := lipgloss.NewStyle().Foreground(t.BreakEven).Background(t.SurfaceBright).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	labelW := 5
	for _, l := range a.proj.Labels {
		labelW = max(labelW, lipgloss.Width(l))
	}
	moneyW := max(12, (innerW-6-labelW-2)/3-2)

	var body strings.Builder
	fmt.Fprintf(&body, "%s%s%s%s%s\n",
		headerStyle.Render(fmt.Sprintf("%4s  ", "#")),
		headerStyle.Render(fmt.Sprintf("%-*s  ", labelW, "Month")),
		headerStyle.Render(fmt.Sprintf("%*s  ", moneyW, "Expenses")),
		headerStyle.Render(fmt.Sprintf("%*s  ", moneyW, "Sales")),
		headerStyle.Render(fmt.Sprintf("%*s", moneyW, "Net")))
	body.WriteString(dimStyle.Render(strings.Repeat("─", min(innerW, 6+labelW+2+3*moneyW+4))))
	body.WriteString("\n")

	end := min(s.Len(), a.table.offset+a.tableVisibleRows())
	for i := a.table.offset; i < end; i++ {
		net := s.Sales[i].Sub(s.Expenses[i])
		month := fmt.Sprintf("%4d  ", i+1)
		label := fmt.Sprintf("%-*s  ", labelW, a.proj.Labels[i])
		exp := fmt.Sprintf("%*s  ", moneyW, cli.FormatMoney(s.Expenses[i], a.currency))
		sales := fmt.Sprintf("%*s  ", moneyW, cli.FormatMoney(s.Sales[i], a.currency))
		netStr := fmt.Sprintf("%*s", moneyW, cli.FormatSignedMoney(net, a.currency))

		if a.proj.BreakEven.Found && i == a.proj.BreakEven.Index {
			line := hlStyle.Render(month + label + exp + sales + netStr + " ◆")
			body.WriteString(lipgloss.PlaceHorizontal(innerW, lipgloss.Left, line,
				lipgloss.WithWhitespaceBackground(t.SurfaceBright)))
			body.WriteString("\n")
			continue
		}

		ns := posStyle
		if net.IsNegative() {
			ns = negStyle
		}
		body.WriteString(mutedStyle.Render(month))
		body.WriteString(rowStyle.Render(label))
		body.WriteString(expStyle.Render(exp))
		body.WriteString(salesStyle.Render(sales))
		body.WriteString(ns.Render(netStr))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(fmt.Sprintf("Months %d-%d of %d  [J/K] scroll  [g/G] top/bottom  [b] break-even",
		a.table.offset+1, end, s.Len())))

	return components.ContentCard("Monthly Projection", body.String(), cw)
}
