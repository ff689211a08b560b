package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"jedna/config"
	"jedna/engine"
	"jedna/logger"
	"jedna/protocol"
	"jedna/stats"
	"jedna/strategy"
)

// runAgent plays one session against the game master on stdin/stdout.
func runAgent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lg, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		File:   cfg.Logging.File,
		Pretty: cfg.Logging.Pretty,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer lg.Close()

	s, err := strategy.New(cfg.Strategy, strategy.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}

	// Session records are off unless a directory is configured
	collector := stats.NewDummyCollector()
	var writer *stats.Writer
	if cfg.Stats.Dir != "" {
		writer, err = stats.NewWriter(cfg.Stats.Dir)
		if err != nil {
			return fmt.Errorf("failed to set up session records: %w", err)
		}
		collector = stats.NewCollector()
	}

	collector.Start(cfg.Strategy)
	log.Info().Msgf("agent ready: strategy=%s", cfg.Strategy)

	eng := engine.New(
		protocol.NewDecoder(cmd.InOrStdin()),
		protocol.NewEncoder(cmd.OutOrStdout()),
		s,
		collector,
	)

	reason, err := eng.Run()
	if err != nil {
		return err
	}

	if writer != nil {
		record := collector.Complete(reason)
		if err := writer.WriteSessionRecord(record); err != nil {
			return fmt.Errorf("failed to write session record: %w", err)
		}
		log.Info().Msgf("session record written to %s", writer.Dir())
	}
	log.Info().Msgf("session over: %s", reason)

	return nil
}

// loadConfig merges the config file with any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = strategyName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if flags.Changed("log-pretty") {
		cfg.Logging.Pretty = logPretty
	}
	if flags.Changed("stats-dir") {
		cfg.Stats.Dir = statsDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
