package report

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/charmbracelet/x/ansi"
)

var start = time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)

func TestMarkdown_Defaults(t *testing.T) {
	p := pipeline.Build(model.DefaultInputs(), start, pipeline.DefaultLabelLayout)
	md := Markdown(p, "USD")

	for _, want := range []string{
		"# Break-Even Projection from Nov 2024",
		"**Break-Even Point: Aug 2025**",
		"| Startup Expenses | $100,000 |",
		"| Months to Forecast | 24 |",
		"| Monthly burn | $10,000 |",
		"| Monthly margin | +$10,000 |",
		"| Net at horizon | +$140,000 |",
		"in month 10.",
		"| 10 | **Aug 2025** | $200,000 | $200,000 | $0 |",
		"| 24 | Oct 2026 | $340,000 | $480,000 | +$140,000 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
	// 5 inputs, 5 summary rows, 24 months, 3 table headers
	if got := strings.Count(md, "\n| "); got != 5+5+24+3 {
		t.Errorf("table rows = %d, want %d", got, 37)
	}
}

func TestMarkdown_NoBreakEven(t *testing.T) {
	in := model.Inputs{
		MonthlyFixedExpenses:    model.DefaultInputs().MonthlyFixedExpenses,
		MonthlyOperationalCosts: model.DefaultInputs().MonthlyOperationalCosts,
		StartupExpenses:         model.DefaultInputs().StartupExpenses,
		MonthlySales:            model.DefaultInputs().MonthlyFixedExpenses,
		Months:                  12,
	}
	md := Markdown(pipeline.Build(in, start, pipeline.DefaultLabelLayout), "USD")

	if !strings.Contains(md, "**No break-even within 12 months**") {
		t.Errorf("missing no-break-even note:\n%s", md)
	}
	if strings.Contains(md, "first cover") {
		t.Error("break-even sentence present without a break-even")
	}
	if strings.Contains(md, "**Nov") {
		t.Error("a month row is highlighted without a break-even")
	}
}

func TestMarkdown_NoMonths(t *testing.T) {
	in := model.DefaultInputs()
	in.Months = 0
	md := Markdown(pipeline.Build(in, start, pipeline.DefaultLabelLayout), "EUR")

	if strings.Contains(md, "## Monthly Totals") {
		t.Error("monthly table rendered for an empty projection")
	}
	if strings.Contains(md, " from ") {
		t.Error("title names a start month for an empty projection")
	}
}

func TestRender(t *testing.T) {
	p := pipeline.Build(model.DefaultInputs(), start, pipeline.DefaultLabelLayout)
	out, err := Render(Markdown(p, "USD"), 100)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Break-Even Projection", "Break-Even Point: Aug 2025", "Startup Expenses"} {
		if !strings.Contains(plain, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	if strings.Contains(plain, "|:---|") {
		t.Error("table delimiter row leaked into rendered output")
	}
}
