// Package config loads optional bndx defaults from $HOME/.bndx/config.json.
// Command-line flags and environment variables take precedence; the file
// only supplies defaults, matching the original tool's properties file.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultBndWorkspace is the fallback bnd workspace location
const DefaultBndWorkspace = "."

// DefaultEclipseWorkspace is the fallback eclipse workspace location
const DefaultEclipseWorkspace = "../../eclipse"

// Config represents the bndx configuration
type Config struct {
	BndWorkspace     string        `json:"bndWorkspace" mapstructure:"bndWorkspace"`
	EclipseWorkspace string        `json:"eclipseWorkspace" mapstructure:"eclipseWorkspace"`
	Logging          LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		BndWorkspace:     DefaultBndWorkspace,
		EclipseWorkspace: DefaultEclipseWorkspace,
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from <configDir>/config.json, falling back to
// defaults when no file exists. Pass "" to use $HOME/.bndx.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		configDir = filepath.Join(home, ".bndx")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetDefault("bndWorkspace", DefaultBndWorkspace)
	v.SetDefault("eclipseWorkspace", DefaultEclipseWorkspace)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
