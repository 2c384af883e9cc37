package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagReportRaw   bool
	flagReportWidth int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Markdown report of the projection",
	Long: "Render the projection as a markdown document. Use --raw to print the\n" +
		"markdown source, e.g. to redirect it into a file.",
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportRaw, "raw", false, "Print markdown without terminal styling")
	reportCmd.Flags().IntVar(&flagReportWidth, "width", 100, "Word-wrap width for styled output")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	run, err := loadValidRun(cmd)
	if err != nil {
		return err
	}

	md := report.Markdown(run.build(), run.currency)
	if flagReportRaw {
		fmt.Print(md)
		return nil
	}

	out, err := report.Render(md, flagReportWidth)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
