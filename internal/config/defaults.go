package config

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Editor:    "sublime",
		Fallbacks: []string{"vscode", "vim"},
		History:   true,
	}
}
