package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"factcheck/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNew_DisabledIsNop(t *testing.T) {
	ws := t.TempDir()
	logger, err := New(ws, config.LoggingConfig{DebugMode: false})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("should go nowhere")

	if _, err := os.Stat(LogsDir(ws)); !os.IsNotExist(err) {
		t.Fatalf("expected no logs directory in production mode, stat err=%v", err)
	}
}

func TestNew_DebugModeWritesFile(t *testing.T) {
	ws := t.TempDir()
	logger, err := New(ws, config.LoggingConfig{DebugMode: true, Level: "debug", File: "test.log"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	For(logger, CategoryController).Debug("state transition")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(LogsDir(ws), "test.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "state transition") {
		t.Errorf("expected message in log, got: %s", data)
	}
	if !strings.Contains(string(data), `"logger":"controller"`) {
		t.Errorf("expected category name in log, got: %s", data)
	}
}

func TestFor_NilParent(t *testing.T) {
	// Must not panic.
	For(nil, CategoryBoot).Info("nop")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
