package cli

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile      string
	logLevel     string
	logFile      string
	logPretty    bool
	strategyName string
	seed         uint64
	statsDir     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jedna-agent",
	Short: "Jedna - a tournament card game agent",
	Long: `Jedna is an automated player for the jedna card game. It speaks the
game master's line protocol on stdin/stdout: each request for an action
gets exactly one reply line, and the agent exits when the game ends.`,
	Version:      version,
	RunE:         runAgent,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jedna/agent.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Agent flags
	rootCmd.Flags().StringVar(&strategyName, "strategy", "first", "decision strategy (first, random, greedy)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random strategy")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "also append logs to this file")
	rootCmd.Flags().BoolVar(&logPretty, "log-pretty", false, "human-readable log output")
	rootCmd.Flags().StringVar(&statsDir, "stats-dir", "", "write a session record CSV under this directory")

	// Version template
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
