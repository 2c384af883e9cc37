package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues are the answers collected by the first-run form.
type setupValues struct {
	startDate string
	currency  string
	theme     string
}

// setupCurrencies are offered in the form; any configured code is added.
var setupCurrencies = []string{"EUR", "USD", "GBP", "CHF", "JPY", "CAD", "AUD"}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		startDate: cfg.Chart.StartDate,
		currency:  config.GetCurrency(cfg),
		theme:     theme.ByName(cfg.Appearance.Theme).Name,
	}
}

func validateStartDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(config.DateLayout, s); err != nil {
		return errors.New("use YYYY-MM-DD, or leave empty for the current month")
	}
	return nil
}

// newSetupForm builds the first-run form writing into v.
func newSetupForm(v *setupValues) *huh.Form {
	currencies := setupCurrencies
	found := false
	for _, c := range currencies {
		if c == v.currency {
			found = true
			break
		}
	}
	if !found && v.currency != "" {
		currencies = append([]string{v.currency}, currencies...)
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to breakeven").
				Description(fmt.Sprintf("A few preferences, saved to %s.\nRun `breakeven setup` anytime to change them.", config.Path())),
			huh.NewInput().
				Title("First projected month").
				Description("YYYY-MM-DD; empty uses the current month").
				Placeholder("2024-11-01").
				Value(&v.startDate).
				Validate(validateStartDate),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions(currencies...)...).
				Value(&v.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
		),
	).WithShowHelp(true)
}

// apply copies the answers into cfg.
func (v setupValues) apply(cfg *config.Config) {
	cfg.Chart.StartDate = strings.TrimSpace(v.startDate)
	if v.currency != "" {
		cfg.Appearance.Currency = v.currency
	}
	if v.theme != "" {
		cfg.Appearance.Theme = v.theme
	}
}

// applySetup stores the form answers and applies them to the running panel.
func (a *App) applySetup() error {
	a.setupVals.apply(&a.cfg)
	theme.SetActive(a.cfg.Appearance.Theme)
	a.currency = config.GetCurrency(a.cfg)
	if start, err := a.cfg.StartDate(time.Now()); err == nil {
		a.start = start
	}
	a.recompute()
	return config.Save(a.cfg)
}

// RunSetup runs the setup form on its own and saves the answers.
// It returns huh.ErrUserAborted when the user cancels.
func RunSetup(cfg config.Config) (config.Config, error) {
	v := newSetupValues(cfg)
	if err := newSetupForm(&v).Run(); err != nil {
		return cfg, err
	}
	v.apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return cfg, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}
