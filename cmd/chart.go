package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagChartWidth  int
	flagChartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the expenses and sales line chart",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 80, "Chart width in columns")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", 0, "Plot rows (default: config chart.height)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	run, err := loadValidRun(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(run.cfg.Appearance.Theme)

	height := flagChartHeight
	if height <= 0 {
		height = run.cfg.Chart.Height
	}

	p := run.build()
	t := theme.Active
	series := []components.Series{
		{Name: "Total Expenses", Values: floats(p.Series.Expenses), Color: t.Expenses},
		{Name: "Total Sales", Values: floats(p.Series.Sales), Color: t.Sales},
	}

	marker, markerLabel := -1, ""
	if p.BreakEven.Found {
		marker, markerLabel = p.BreakEven.Index, "Break-Even"
	}

	label, found := p.BreakEvenLabel()

	fmt.Println()
	fmt.Println(components.LineChart(series, p.Labels, marker, flagChartWidth, height))
	fmt.Println()
	fmt.Println(components.ChartLegend(series, markerLabel))
	fmt.Println()
	fmt.Println(cli.RenderNote(cli.BreakEvenNote(label, found, p.Inputs.Months), found))
	fmt.Println()

	return nil
}

func floats(ds []decimal.Decimal) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = d.InexactFloat64()
	}
	return out
}
