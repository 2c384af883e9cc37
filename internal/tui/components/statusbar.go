package components

import (
	"strings"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. right is typically the
// break-even outcome; flash is a transient message such as "Saved".
func RenderStatusBar(width int, right, flash string) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)

	left := barStyle.Render(" [?]help  [j/k]focus  [h/l]adjust  [q]uit")
	if flash != "" {
		left += barStyle.Render("  ") + flashStyle.Render(flash)
	}
	if right != "" {
		right = barStyle.Render(right + " ")
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + barStyle.Render(strings.Repeat(" ", padding)) + right
}
