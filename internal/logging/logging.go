// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at w with a human-readable console format.
// Debug events are emitted only when verbose is set.
func Setup(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    w != os.Stderr && w != os.Stdout,
	}).Level(level)
}

// SetupFile logs to path, for the alt-screen TUI where stderr is unusable.
// The returned closer must be called on exit. On failure logs are discarded.
func SetupFile(path string, verbose bool) io.Closer {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		Setup(io.Discard, false)
		return nopCloser{}
	}
	//nolint:gosec // log path is derived from the user's cache dir
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		Setup(io.Discard, false)
		return nopCloser{}
	}
	Setup(f, verbose)
	return f
}

// CacheDir returns the XDG cache directory used for the TUI log.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "breakeven")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "breakeven")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// TUILogPath is where the interactive panel writes its log.
func TUILogPath() string {
	return filepath.Join(CacheDir(), "tui.log")
}
