package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"jedna/strategy"
	"jedna/utils"
)

// Validate rejects configurations the agent cannot run with.
func (c *Config) Validate() error {
	if utils.FindIndex(strategy.Names, c.Strategy) < 0 {
		return fmt.Errorf("unknown strategy %q (available: %v)", c.Strategy, strategy.Names)
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
		}
	}

	return nil
}
