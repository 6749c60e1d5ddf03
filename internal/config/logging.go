package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level     string `yaml:"level"`      // debug, info, warn, error
	DebugMode bool   `yaml:"debug_mode"` // master toggle for the TUI log file
	File      string `yaml:"file"`       // relative to <workspace>/.factcheck/logs
}
