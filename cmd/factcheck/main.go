package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"factcheck/cmd/factcheck/ui"
	"factcheck/internal/config"
	"factcheck/internal/logging"
	"factcheck/internal/provider"
	"factcheck/internal/stats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose      bool
	workspace    string
	providerKind string
	timeout      time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd launches the interactive checker.
var rootCmd = &cobra.Command{
	Use:   "factcheck",
	Short: "FactCheck - verify claims against trusted sources",
	Long: `FactCheck classifies a short claim as REAL, FAKE or NOT ENOUGH INFO,
with a confidence score and the sources behind the verdict.

Run without arguments to start the interactive checker.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workspace == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}
			workspace = wd
		}

		// The interactive UI owns the terminal and logs to a file instead.
		if cmd == cmd.Root() {
			return nil
		}

		var err error
		logger, err = logging.NewConsole(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVarP(&providerKind, "provider", "p", "", "Verification provider (keyword, static, gemini, remote, consensus)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Verification timeout (0 uses the config value)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func configPath() string {
	return config.DefaultPath(workspace)
}

// loadConfig loads the workspace config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if providerKind != "" {
		cfg.Provider.Kind = providerKind
	}
	if timeout > 0 {
		cfg.Provider.Timeout = timeout.String()
	}
}

// openTracker opens the stats tracker, or returns nil when stats are off.
func openTracker(cfg *config.Config, log *zap.Logger) *stats.Tracker {
	if !cfg.Stats.Enabled {
		return nil
	}
	tr, err := stats.NewTracker(cfg.StatsPath(workspace))
	if err != nil {
		logging.For(log, logging.CategoryStats).Warn("stats unavailable", zap.Error(err))
	}
	return tr
}

// buildProvider creates the configured provider with logging and stats.
func buildProvider(ctx context.Context, cfg *config.Config, tr *stats.Tracker, log *zap.Logger) (provider.Provider, error) {
	p, err := provider.New(ctx, cfg.Provider)
	if err != nil {
		return nil, err
	}
	var rec provider.Recorder
	if tr != nil {
		rec = tr
	}
	return provider.Instrument(p, cfg.Provider.Kind, logging.For(log, logging.CategoryProvider), rec), nil
}

func saveTracker(tr *stats.Tracker, log *zap.Logger) {
	if tr == nil {
		return
	}
	if err := tr.Save(); err != nil {
		logging.For(log, logging.CategoryStats).Warn("failed to save stats", zap.Error(err))
	}
}

// runInteractive starts the TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fileLog, err := logging.New(workspace, cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = fileLog.Sync() }()
	boot := logging.For(fileLog, logging.CategoryBoot)
	boot.Info("starting", zap.String("workspace", workspace), zap.String("provider", cfg.Provider.Kind))

	tr := openTracker(cfg, fileLog)
	defer saveTracker(tr, fileLog)

	p, err := buildProvider(ctx, cfg, tr, fileLog)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.IsDark()))
	opts := ui.Options{
		Provider: p,
		Logger:   fileLog,
		Styles:   &styles,
		Rebuild: func(ctx context.Context, next *config.Config) (provider.Provider, error) {
			applyFlags(next)
			return buildProvider(ctx, next, tr, fileLog)
		},
	}

	if _, statErr := os.Stat(filepath.Dir(configPath())); statErr == nil {
		w, err := config.NewWatcher(configPath())
		if err != nil {
			boot.Warn("config reload disabled", zap.Error(err))
		} else {
			w.Start(ctx)
			defer w.Stop()
			opts.Watcher = w
		}
	}

	return ui.Run(ctx, opts)
}
