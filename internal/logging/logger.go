// Package logging builds the zap loggers used across factcheck.
// The interactive UI owns the terminal, so its logs go to
// <workspace>/.factcheck/logs and only when debug_mode is enabled.
// Command-line subcommands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"factcheck/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup and shutdown
	CategoryProvider   Category = "provider"   // Verification provider calls
	CategoryController Category = "controller" // Workflow state transitions
	CategoryServer     Category = "server"     // HTTP API
	CategoryConfig     Category = "config"     // Config load and reload
	CategoryStats      Category = "stats"      // Statistics persistence
)

// LogsDir returns the log directory for a workspace.
func LogsDir(workspace string) string {
	return filepath.Join(config.Dir(workspace), "logs")
}

// New builds the file logger for the interactive UI. It returns a no-op
// logger when debug mode is off.
func New(workspace string, cfg config.LoggingConfig) (*zap.Logger, error) {
	if !cfg.DebugMode {
		return zap.NewNop(), nil
	}

	dir := LogsDir(workspace)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	file := cfg.File
	if file == "" {
		file = "factcheck.log"
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.OutputPaths = []string{filepath.Join(dir, file)}
	zc.ErrorOutputPaths = []string{filepath.Join(dir, file)}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewConsole builds the stderr logger used by subcommands.
func NewConsole(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns the child logger for a category. A nil parent yields a no-op
// logger so callers never need to nil-check.
func For(parent *zap.Logger, cat Category) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(string(cat))
}

// ParseLevel maps a config level string onto a zap level; unknown values
// mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
