package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/logging"
	"github.com/theirongolddev/breakeven/internal/tui"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive break-even chart",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	run, err := loadRun(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file.
	closer := logging.SetupFile(logging.TUILogPath(), flagVerbose || run.cfg.General.Verbose)
	defer closer.Close()

	theme.SetActive(run.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(run.cfg, run.inputs, run.start)
	if flagCurrency != "" {
		app = app.WithCurrency(run.currency)
	}
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
