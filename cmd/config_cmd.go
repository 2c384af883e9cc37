package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	currency := config.GetCurrency(cfg)

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Verbose: %v\n", cfg.General.Verbose)
	fmt.Println()

	fmt.Println("  [Defaults]")
	in := cfg.Inputs()
	for _, prm := range model.DefaultBounds() {
		v := in.Get(prm.Key)
		value := cli.FormatNumber(v.IntPart())
		if prm.Currency {
			value = cli.FormatMoney(v, currency)
		}
		fmt.Printf("    %-26s %s\n", prm.Label+":", value)
	}
	fmt.Println()

	fmt.Println("  [Chart]")
	if cfg.Chart.StartDate != "" {
		fmt.Printf("    Start date:   %s\n", cfg.Chart.StartDate)
	} else {
		fmt.Println("    Start date:   current month")
	}
	fmt.Printf("    Label format: %s\n", cfg.Chart.LabelFormat)
	fmt.Printf("    Height:       %d\n", cfg.Chart.Height)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency: %s\n", currency)
	fmt.Println()

	fmt.Println("  Run `breakeven setup` to reconfigure.")
	return nil
}
