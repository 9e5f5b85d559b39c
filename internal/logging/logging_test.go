package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/planreader/internal/model"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"chatty", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		logger, err := New(model.LoggingConfig{Level: tt.level, Format: "json"})
		if err != nil {
			t.Fatalf("New(%q) failed: %v", tt.level, err)
		}
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("level %q: expected %s enabled", tt.level, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("level %q: expected %s disabled", tt.level, tt.want-1)
		}
	}
}

func TestNew_Console(t *testing.T) {
	if _, err := New(model.LoggingConfig{Level: "info", Format: "console"}); err != nil {
		t.Fatalf("console logger failed: %v", err)
	}
}

func TestVerbose(t *testing.T) {
	cfg := model.LoggingConfig{Level: "warn"}
	if Verbose(cfg, false).Level != "warn" {
		t.Error("expected level unchanged")
	}
	if Verbose(cfg, true).Level != "debug" {
		t.Error("expected debug when verbose")
	}
}
