package tui

import (
	"testing"

	"github.com/theirongolddev/breakeven/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i := range components.Tabs {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d: x past the last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Projection"),
		len("Table"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx && tabIdx == 2 {
		w += 3 // inactive Settings adds "[x]"
	}
	return w
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)

	// "Projection" is active (12 wide), separator, then "Table".
	a = update(a, tea.MouseMsg{X: 15, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.activeTab != tabTable {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabTable)
	}

	// Clicks below the header are ignored.
	a = update(a, tea.MouseMsg{X: 2, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.activeTab != tabTable {
		t.Fatalf("click in content changed tab to %d", a.activeTab)
	}
}

func TestMouseWheelAdjustsFocusedControl(t *testing.T) {
	a := newTestApp(t)
	a = press(a, "j", "j", "j") // Monthly Sales

	a = update(a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := a.inputs.MonthlySales.IntPart(); got != 21_000 {
		t.Fatalf("sales after wheel up = %d, want 21000", got)
	}
	a = update(a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	a = update(a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := a.inputs.MonthlySales.IntPart(); got != 19_000 {
		t.Fatalf("sales after wheel down = %d, want 19000", got)
	}
}
