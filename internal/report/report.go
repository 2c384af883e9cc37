// Package report renders a projection as a markdown document.
package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/charmbracelet/glamour"
)

type inputRow struct {
	Label string
	Value string
}

type monthRow struct {
	Month     int
	Label     string
	Expenses  string
	Sales     string
	Net       string
	BreakEven bool
}

type reportData struct {
	Start    string
	Note     string
	Inputs   []inputRow
	Expenses string
	Sales    string
	Net      string
	Burn     string
	Margin   string
	Found    bool
	Month    int
	Rows     []monthRow
}

const reportTemplate = `# Break-Even Projection{{ if .Start }} from {{ .Start }}{{ end }}

**{{ .Note }}**

## Inputs

| Parameter | Value |
|:---|---:|
{{- range .Inputs }}
| {{ .Label }} | {{ .Value }} |
{{- end }}

## Summary

| | |
|:---|---:|
| Monthly burn | {{ .Burn }} |
| Monthly margin | {{ .Margin }} |
| Total expenses | {{ .Expenses }} |
| Total sales | {{ .Sales }} |
| Net at horizon | {{ .Net }} |
{{- if .Found }}

Cumulative sales first cover cumulative expenses in month {{ .Month }}.
{{- end }}
{{- if .Rows }}

## Monthly Totals

| # | Month | Expenses | Sales | Net |
|---:|:---|---:|---:|---:|
{{- range .Rows }}
| {{ .Month }} | {{ if .BreakEven }}**{{ .Label }}**{{ else }}{{ .Label }}{{ end }} | {{ .Expenses }} | {{ .Sales }} | {{ .Net }} |
{{- end }}
{{- end }}
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Markdown renders p as a markdown report with amounts in currency.
func Markdown(p model.Projection, currency string) string {
	sum := pipeline.Summarize(p)
	label, found := p.BreakEvenLabel()

	data := reportData{
		Note:     cli.BreakEvenNote(label, found, p.Inputs.Months),
		Expenses: cli.FormatMoney(sum.FinalExpenses, currency),
		Sales:    cli.FormatMoney(sum.FinalSales, currency),
		Net:      cli.FormatSignedMoney(sum.FinalNet, currency),
		Burn:     cli.FormatMoney(sum.MonthlyBurn, currency),
		Margin:   cli.FormatSignedMoney(sum.MonthlyMargin, currency),
		Found:    found,
		Month:    p.BreakEven.Month(),
	}
	if len(p.Labels) > 0 {
		data.Start = p.Labels[0]
	}

	for _, prm := range model.DefaultBounds() {
		v := p.Inputs.Get(prm.Key)
		value := cli.FormatNumber(v.IntPart())
		if prm.Currency {
			value = cli.FormatMoney(v, currency)
		}
		data.Inputs = append(data.Inputs, inputRow{Label: prm.Label, Value: value})
	}

	s := p.Series
	for i := 0; i < s.Len(); i++ {
		data.Rows = append(data.Rows, monthRow{
			Month:     i + 1,
			Label:     p.Labels[i],
			Expenses:  cli.FormatMoney(s.Expenses[i], currency),
			Sales:     cli.FormatMoney(s.Sales[i], currency),
			Net:       cli.FormatSignedMoney(s.Sales[i].Sub(s.Expenses[i]), currency),
			BreakEven: found && i == p.BreakEven.Index,
		})
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}

// Render formats markdown for the terminal, wrapping at width.
func Render(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
