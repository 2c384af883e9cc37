package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestSetup_Level(t *testing.T) {
	var buf bytes.Buffer

	Setup(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Str("months", "24").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug event logged without verbose: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "months=24") {
		t.Errorf("info event missing: %q", out)
	}

	buf.Reset()
	Setup(&buf, true)
	log.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug event missing with verbose: %q", buf.String())
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tui.log")

	closer := SetupFile(path, false)
	log.Info().Msg("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	if got := CacheDir(); got != filepath.Join("/tmp/xdg-cache", "breakeven") {
		t.Fatalf("CacheDir() = %q", got)
	}
}
