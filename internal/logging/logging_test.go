package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"levelkeeper/internal/logging"
)

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"", logging.FormatConsole, logging.FormatJSON, "JSON"} {
		logger, err := logging.New("debug", format)
		if err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("format %q: debug should be enabled", format)
		}
	}
}

func TestNew_LevelFilters(t *testing.T) {
	logger, err := logging.New("warn", logging.FormatJSON)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be filtered at warn")
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := logging.New("loud", logging.FormatJSON); err == nil {
		t.Fatal("expected error for bad level")
	}
	if _, err := logging.New("info", "xml"); err == nil {
		t.Fatal("expected error for bad format")
	}
}
