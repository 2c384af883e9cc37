package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/cli"

	"github.com/spf13/cobra"
)

const coverageBarWidth = 12

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Month-by-month cumulative totals",
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	run, err := loadValidRun(cmd)
	if err != nil {
		return err
	}

	p := run.build()
	s := p.Series

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY PROJECTION  " + projectionSpan(p)))
	fmt.Println()

	rows := make([][]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		exp, sales := s.Expenses[i], s.Sales[i]
		bar := cli.RenderCoverageBar(sales.InexactFloat64(), exp.InexactFloat64(), coverageBarWidth)

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Labels[i],
			cli.FormatMoney(exp, run.currency),
			cli.FormatMoney(sales, run.currency),
			cli.FormatSignedMoney(sales.Sub(exp), run.currency),
			bar,
		})
	}

	highlight := 0
	if p.BreakEven.Found {
		highlight = p.BreakEven.Month()
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Cumulative Totals",
		Headers:   []string{"#", "Month", "Expenses", "Sales", "Net", "Coverage"},
		Rows:      rows,
		Highlight: highlight,
	}))
	fmt.Println(cli.RenderMuted("  Coverage is cumulative sales as a share of cumulative expenses."))
	fmt.Println()

	label, found := p.BreakEvenLabel()
	fmt.Println(cli.RenderNote(cli.BreakEvenNote(label, found, p.Inputs.Months), found))
	fmt.Println()

	return nil
}
