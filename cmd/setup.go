package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("starting from default config")
	}

	if _, err := tui.RunSetup(cfg); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	fmt.Printf("\n  Saved to %s\n", config.Path())
	fmt.Println("  Run `breakeven tui` to open the interactive chart.")
	fmt.Println()
	return nil
}
