// Package cmd implements the breakeven CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/logging"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagStartup     float64
	flagFixed       float64
	flagOperational float64
	flagSales       float64
	flagMonths      int
	flagStart       string
	flagCurrency    string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Break-even projection calculator",
	Long: "Project cumulative expenses and sales month by month and find the first\n" +
		"month where sales cover expenses.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	def := model.DefaultInputs()

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagStartup, "startup", def.StartupExpenses.InexactFloat64(), "One-time startup expenses")
	pf.Float64Var(&flagFixed, "fixed", def.MonthlyFixedExpenses.InexactFloat64(), "Monthly fixed expenses")
	pf.Float64Var(&flagOperational, "operational", def.MonthlyOperationalCosts.InexactFloat64(), "Monthly operational costs")
	pf.Float64Var(&flagSales, "sales", def.MonthlySales.InexactFloat64(), "Monthly sales")
	pf.IntVarP(&flagMonths, "months", "m", def.Months, "Months to forecast")
	pf.StringVarP(&flagStart, "start", "s", "", "First projected month as YYYY-MM-DD (default: config, then current month)")
	pf.StringVarP(&flagCurrency, "currency", "c", "", "ISO currency code for amounts (default: config)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
}

func setupLogging(_ *cobra.Command, _ []string) error {
	logging.Setup(os.Stderr, flagVerbose)
	return nil
}

// projectionRun is everything a command needs to build and show a projection.
type projectionRun struct {
	cfg      config.Config
	inputs   model.Inputs
	start    time.Time
	layout   string
	currency string
}

// loadRun merges config defaults with any flags set on the command line.
// Unset flags keep the configured defaults. It also re-applies the log
// level now that [general] verbose is known.
func loadRun(cmd *cobra.Command) (projectionRun, error) {
	cfg, err := config.Load()
	logging.Setup(os.Stderr, flagVerbose || cfg.General.Verbose)
	if err != nil {
		log.Warn().Err(err).Str("path", config.Path()).Msg("using default config")
	}

	in := cfg.Inputs()
	flags := cmd.Flags()
	amounts := []struct {
		name string
		key  model.ParamKey
		val  float64
	}{
		{"startup", model.ParamStartup, flagStartup},
		{"fixed", model.ParamFixed, flagFixed},
		{"operational", model.ParamOperational, flagOperational},
		{"sales", model.ParamSales, flagSales},
	}
	for _, a := range amounts {
		if flags.Changed(a.name) {
			in = in.With(a.key, decimal.NewFromFloat(a.val))
		}
	}
	if flags.Changed("months") {
		in.Months = flagMonths
	}

	run := projectionRun{
		cfg:      cfg,
		inputs:   in,
		layout:   cfg.Chart.LabelFormat,
		currency: config.GetCurrency(cfg),
	}
	if run.layout == "" {
		run.layout = pipeline.DefaultLabelLayout
	}
	if flagCurrency != "" {
		run.currency = strings.ToUpper(flagCurrency)
	}

	now := time.Now()
	if flagStart != "" {
		run.start, err = time.ParseInLocation(config.DateLayout, flagStart, time.Local)
		if err != nil {
			return run, fmt.Errorf("--start %q: want YYYY-MM-DD", flagStart)
		}
	} else if run.start, err = cfg.StartDate(now); err != nil {
		log.Warn().Err(err).Msg("using the current month")
	}

	log.Debug().
		Str("startup", in.StartupExpenses.String()).
		Str("fixed", in.MonthlyFixedExpenses.String()).
		Str("operational", in.MonthlyOperationalCosts.String()).
		Str("sales", in.MonthlySales.String()).
		Int("months", in.Months).
		Time("start", run.start).
		Str("currency", run.currency).
		Msg("inputs resolved")

	return run, nil
}

// loadValidRun is loadRun for commands that reject out-of-range inputs.
func loadValidRun(cmd *cobra.Command) (projectionRun, error) {
	run, err := loadRun(cmd)
	if err != nil {
		return run, err
	}
	if err := pipeline.Validate(run.inputs, model.DefaultBounds()); err != nil {
		return run, fmt.Errorf("invalid inputs:\n%w", err)
	}
	return run, nil
}

func (r projectionRun) build() model.Projection {
	return pipeline.Build(r.inputs, r.start, r.layout)
}
