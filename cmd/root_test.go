package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

// withConfig points the config dir at a temp dir holding toml, or no
// config file at all when toml is empty.
func withConfig(t *testing.T, toml string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BREAKEVEN_CURRENCY", "")
	if toml == "" {
		return
	}
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config.Path(), []byte(toml), 0o600); err != nil {
		t.Fatal(err)
	}
}

// parseRoot resets every flag to its default and parses args on the
// root command, as cobra would before RunE.
func parseRoot(t *testing.T, args ...string) {
	t.Helper()
	fs := rootCmd.Flags()
	if err := rootCmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	if err := rootCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
}

func TestLoadRun_FlagsOverrideConfig(t *testing.T) {
	withConfig(t, `
[defaults]
startup = 50000.0
fixed = 4000.0
operational = 2000.0
sales = 25000.0
months = 36
`)
	parseRoot(t, "--sales", "30000", "-m", "12")

	run, err := loadRun(rootCmd)
	if err != nil {
		t.Fatalf("loadRun: %v", err)
	}
	in := run.inputs
	if got := in.MonthlySales.IntPart(); got != 30_000 {
		t.Errorf("sales = %d, want flag value 30000", got)
	}
	if in.Months != 12 {
		t.Errorf("months = %d, want flag value 12", in.Months)
	}
	if got := in.StartupExpenses.IntPart(); got != 50_000 {
		t.Errorf("startup = %d, want config value 50000", got)
	}
	if got := in.MonthlyFixedExpenses.IntPart(); got != 4_000 {
		t.Errorf("fixed = %d, want config value 4000", got)
	}
}

func TestLoadRun_UnsetFlagsKeepConfig(t *testing.T) {
	withConfig(t, `
[defaults]
startup = 50000.0
fixed = 4000.0
operational = 2000.0
sales = 25000.0
months = 36
`)
	parseRoot(t)

	run, err := loadRun(rootCmd)
	if err != nil {
		t.Fatalf("loadRun: %v", err)
	}
	if got := run.inputs.MonthlySales.IntPart(); got != 25_000 {
		t.Errorf("sales = %d, want config value 25000", got)
	}
	if run.inputs.Months != 36 {
		t.Errorf("months = %d, want config value 36", run.inputs.Months)
	}
	if run.currency != "EUR" {
		t.Errorf("currency = %q, want EUR", run.currency)
	}
}

func TestLoadRun_StartFlag(t *testing.T) {
	withConfig(t, "")

	parseRoot(t, "--start", "2025-01-15")
	run, err := loadRun(rootCmd)
	if err != nil {
		t.Fatalf("loadRun: %v", err)
	}
	want := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local)
	if !run.start.Equal(want) {
		t.Errorf("start = %v, want %v", run.start, want)
	}
	if got := run.build().Labels[0]; got != "Jan 2025" {
		t.Errorf("first label = %q, want Jan 2025", got)
	}

	parseRoot(t, "--start", "2025/01/15")
	if _, err := loadRun(rootCmd); err == nil || !strings.Contains(err.Error(), "--start") {
		t.Errorf("bad --start: err = %v, want a --start error", err)
	}
}

func TestLoadRun_CurrencyUppercased(t *testing.T) {
	withConfig(t, "")
	parseRoot(t, "-c", "usd")

	run, err := loadRun(rootCmd)
	if err != nil {
		t.Fatalf("loadRun: %v", err)
	}
	if run.currency != "USD" {
		t.Errorf("currency = %q, want USD", run.currency)
	}
	if run.cfg.Appearance.Currency != "EUR" {
		t.Errorf("config currency = %q, flag must not change it", run.cfg.Appearance.Currency)
	}
}

func TestLoadValidRun_RejectsOutOfRangeConfig(t *testing.T) {
	withConfig(t, `
[defaults]
startup = 100000.0
fixed = 5000.0
operational = 5000.0
sales = 20000.0
months = 0
`)
	parseRoot(t)

	_, err := loadValidRun(rootCmd)
	if !errors.Is(err, pipeline.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if !strings.Contains(err.Error(), "months") {
		t.Errorf("error does not name months: %v", err)
	}

	// A flag inside the range fixes it.
	parseRoot(t, "-m", "6")
	if _, err := loadValidRun(rootCmd); err != nil {
		t.Fatalf("with -m 6: %v", err)
	}
}

func TestLoadValidRun_RejectsOutOfRangeFlag(t *testing.T) {
	withConfig(t, "")
	parseRoot(t, "--sales=-1")

	if _, err := loadValidRun(rootCmd); !errors.Is(err, pipeline.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestLoadRun_ConfigVerboseEnablesDebug(t *testing.T) {
	withConfig(t, "[general]\nverbose = true\n")
	parseRoot(t)
	if _, err := loadRun(rootCmd); err != nil {
		t.Fatalf("loadRun: %v", err)
	}
	if got := log.Logger.GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("level = %v with verbose config, want debug", got)
	}

	withConfig(t, "")
	parseRoot(t)
	if _, err := loadRun(rootCmd); err != nil {
		t.Fatalf("loadRun: %v", err)
	}
	if got := log.Logger.GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("level = %v without verbose, want info", got)
	}
}
