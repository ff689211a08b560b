package config

// Config is the agent's full configuration.
type Config struct {
	// Decision strategy: first, random or greedy
	Strategy string `json:"strategy" mapstructure:"strategy"`

	// Seed for the random strategy
	Seed uint64 `json:"seed" mapstructure:"seed"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Session records
	Stats StatsConfig `json:"stats" mapstructure:"stats"`
}

// LoggingConfig controls the agent's logging. Output goes to stderr or a
// file; stdout belongs to the game master.
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	File   string `json:"file" mapstructure:"file"`
	Pretty bool   `json:"pretty" mapstructure:"pretty"`
}

// StatsConfig controls session records. An empty Dir disables them.
type StatsConfig struct {
	Dir string `json:"dir" mapstructure:"dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Strategy: "first",
		Seed:     1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
