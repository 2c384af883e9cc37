package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Inputs, totals and the break-even month",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	run, err := loadValidRun(cmd)
	if err != nil {
		return err
	}

	p := run.build()
	sum := pipeline.Summarize(p)
	cur := run.currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("BREAK-EVEN PROJECTION  " + projectionSpan(p)))
	fmt.Println()

	var rows [][]string
	for _, prm := range model.DefaultBounds() {
		v := p.Inputs.Get(prm.Key)
		value := cli.FormatNumber(v.IntPart())
		if prm.Currency {
			value = cli.FormatMoney(v, cur)
		}
		rows = append(rows, []string{prm.Label, value})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Monthly Burn", cli.FormatMoney(sum.MonthlyBurn, cur)},
		[]string{"Monthly Margin", cli.FormatSignedMoney(sum.MonthlyMargin, cur)},
		[]string{"---"},
		[]string{"Total Expenses", cli.FormatMoney(sum.FinalExpenses, cur)},
		[]string{"Total Sales", cli.FormatMoney(sum.FinalSales, cur)},
		[]string{"Net at Horizon", cli.FormatSignedMoney(sum.FinalNet, cur)},
		[]string{"---"},
	)

	// The closed form also answers past the horizon.
	if n, ok := pipeline.MonthsToBreakEven(p.Inputs); ok {
		rows = append(rows, []string{"Months to Break-Even", cli.FormatMonths(n)})
	} else {
		rows = append(rows, []string{"Months to Break-Even", "never"})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	label, found := p.BreakEvenLabel()
	fmt.Println(cli.RenderNote(cli.BreakEvenNote(label, found, p.Inputs.Months), found))
	fmt.Println(cli.RenderMuted("  Run `breakeven table` for month-by-month totals."))
	fmt.Println()

	return nil
}

// projectionSpan returns "Nov 2024 to Oct 2026" for the projected months.
func projectionSpan(p model.Projection) string {
	switch len(p.Labels) {
	case 0:
		return "no months"
	case 1:
		return p.Labels[0]
	}
	return p.Labels[0] + " to " + p.Labels[len(p.Labels)-1]
}
