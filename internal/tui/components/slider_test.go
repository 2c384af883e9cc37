package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSlider(t *testing.T) {
	theme.SetActive("flexoki-dark")

	focused := ansi.Strip(Slider("Monthly Sales", "€20,000", 0.4, true, 26, 20))
	plain := ansi.Strip(Slider("Monthly Sales", "€20,000", 0.4, false, 26, 20))

	if !strings.HasPrefix(focused, "▸ ") {
		t.Errorf("focused slider missing marker: %q", focused)
	}
	if strings.HasPrefix(plain, "▸") {
		t.Errorf("unfocused slider has marker: %q", plain)
	}
	if lipgloss.Width(focused) != lipgloss.Width(plain) {
		t.Errorf("focus changes width: %d vs %d", lipgloss.Width(focused), lipgloss.Width(plain))
	}
	if !strings.HasSuffix(focused, "€20,000") {
		t.Errorf("value missing: %q", focused)
	}
	if got := strings.Count(focused, "━"); got != 8 {
		t.Errorf("filled cells = %d, want 8 of 20", got)
	}
}

func TestSlider_ClampsPercent(t *testing.T) {
	over := ansi.Strip(Slider("x", "v", 3, false, 1, 10))
	if got := strings.Count(over, "━"); got != 10 {
		t.Errorf("filled cells = %d, want 10", got)
	}
	under := ansi.Strip(Slider("x", "v", -1, false, 1, 10))
	if got := strings.Count(under, "━"); got != 0 {
		t.Errorf("filled cells = %d, want 0", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('t'); got != 1 {
		t.Errorf("TabIdxByKey('t') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestRenderTabBarWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for active := range Tabs {
		bar := RenderTabBar(active, 80)
		if w := lipgloss.Width(bar); w != 80 {
			t.Errorf("active=%d: width = %d, want 80", active, w)
		}
		plain := ansi.Strip(bar)
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		want += len(Tabs) - 1
		if got := lipgloss.Width(strings.TrimRight(plain, " ")); got > want || got < want-1 {
			t.Errorf("active=%d: content width = %d, want about %d", active, got, want)
		}
	}
}
