package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading
type Loader struct {
	configPath string
}

// NewLoader creates a loader for the given path. An empty path means the
// default $HOME/.jedna/agent.json.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load merges defaults, JEDNA_* environment variables and the config file,
// the file winning over defaults and the environment winning over the file.
func (l *Loader) Load() (*Config, error) {
	// Determine config path
	configPath := l.configPath
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".jedna", "agent.json")
	}

	// Setup viper
	v := viper.New()

	// Register every key with its default; Unmarshal only sees environment
	// values for registered keys
	defaults := DefaultConfig()
	v.SetDefault("strategy", defaults.Strategy)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.pretty", defaults.Logging.Pretty)
	v.SetDefault("stats.dir", defaults.Stats.Dir)

	// Read environment variables: JEDNA_STRATEGY, JEDNA_LOGGING_LEVEL, ...
	v.SetEnvPrefix("JEDNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the config file when it exists; without one, defaults and the
	// environment still apply
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Load is a convenience function that creates a loader and loads the config
func Load(configPath string) (*Config, error) {
	loader := NewLoader(configPath)
	return loader.Load()
}
