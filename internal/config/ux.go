package config

// UIConfig holds terminal UI configuration.
type UIConfig struct {
	// Theme is "light" or "dark".
	Theme string `yaml:"theme"`
}

// IsDark reports whether the dark theme is selected.
func (u UIConfig) IsDark() bool {
	return u.Theme == "dark"
}
