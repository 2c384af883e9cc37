package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderCoverageBar(t *testing.T) {
	cases := []struct {
		covered, total float64
		wantFull       int
	}{
		{50, 100, 6},
		{0, 100, 0},
		{150, 100, 12},
		{0, 0, 12},
	}
	for _, tc := range cases {
		bar := ansi.Strip(RenderCoverageBar(tc.covered, tc.total, 12))
		if w := lipgloss.Width(bar); w != 12 {
			t.Errorf("RenderCoverageBar(%v, %v) width = %d, want 12", tc.covered, tc.total, w)
		}
		if got := strings.Count(bar, "█"); got != tc.wantFull {
			t.Errorf("RenderCoverageBar(%v, %v) filled = %d, want %d", tc.covered, tc.total, got, tc.wantFull)
		}
	}
}

func TestRenderTable_TitleAndRows(t *testing.T) {
	out := ansi.Strip(RenderTable(Table{
		Title:     "Cumulative Totals",
		Headers:   []string{"#", "Month"},
		Rows:      [][]string{{"1", "Nov 2024"}, {"2", "Dec 2024"}},
		Highlight: 2,
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if strings.TrimSpace(lines[0]) != "Cumulative Totals" {
		t.Fatalf("first line = %q, want the title", lines[0])
	}
	if !strings.Contains(out, "Dec 2024") {
		t.Fatalf("table missing a row:\n%s", out)
	}
	w := lipgloss.Width(lines[1])
	for _, l := range lines[1:] {
		if lipgloss.Width(l) != w {
			t.Errorf("ragged table line %q", l)
		}
	}
}
