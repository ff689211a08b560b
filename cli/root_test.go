package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentSession(t *testing.T) {
	cmd := GetRootCmd()
	cmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "agent.json"),
		"--log-level", "error",
	})
	cmd.SetIn(strings.NewReader(
		`{"type":"request_action","state":{"playable_cards":["r5","b3"],"hand":["r5","b3"],"available_actions":["play","draw"]}}` + "\n" +
			`{"type":"game_end"}` + "\n"))

	output := &bytes.Buffer{}
	cmd.SetOut(output)

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, `{"action":"play","card":"r5"}`+"\n", output.String(),
		"stdout should carry exactly the reply lines")
}

func TestRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		cmd := GetRootCmd()
		cmd.SetArgs([]string{"--version"})

		output := &bytes.Buffer{}
		cmd.SetOut(output)

		err := cmd.Execute()
		require.NoError(t, err)

		assert.Contains(t, output.String(), "jedna-agent version")
		assert.Contains(t, output.String(), GetVersion())
	})

	t.Run("version subcommand", func(t *testing.T) {
		cmd := GetRootCmd()
		cmd.SetArgs([]string{"version"})

		output := &bytes.Buffer{}
		cmd.SetOut(output)

		err := cmd.Execute()
		require.NoError(t, err)

		assert.Equal(t, "jedna-agent version "+GetVersion()+"\n", output.String())
	})

	t.Run("help flag", func(t *testing.T) {
		cmd := GetRootCmd()
		cmd.SetArgs([]string{"--help"})

		output := &bytes.Buffer{}
		cmd.SetOut(output)

		err := cmd.Execute()
		require.NoError(t, err)

		helpText := output.String()
		assert.Contains(t, helpText, "Jedna")
		assert.Contains(t, helpText, "stdin/stdout")
	})

	t.Run("global flags", func(t *testing.T) {
		cmd := GetRootCmd()

		// Check config flag exists
		configFlag := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, configFlag)
		assert.Equal(t, "", configFlag.DefValue)

		// Check log-level flag exists
		logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
		require.NotNil(t, logLevelFlag)
		assert.Equal(t, "info", logLevelFlag.DefValue)

		// Check strategy flag exists
		strategyFlag := cmd.Flags().Lookup("strategy")
		require.NotNil(t, strategyFlag)
		assert.Equal(t, "first", strategyFlag.DefValue)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("uses defaults without a config file", func(t *testing.T) {
		cfgFile = filepath.Join(t.TempDir(), "agent.json")

		cfg, err := loadConfig(GetRootCmd())
		require.NoError(t, err)

		assert.Equal(t, "first", cfg.Strategy)
		assert.Equal(t, uint64(1), cfg.Seed)
		assert.Empty(t, cfg.Stats.Dir)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		cfgFile = filepath.Join(t.TempDir(), "agent.json")
		dir := t.TempDir()

		cmd := GetRootCmd()
		require.NoError(t, cmd.Flags().Set("strategy", "greedy"))
		require.NoError(t, cmd.Flags().Set("seed", "7"))
		require.NoError(t, cmd.Flags().Set("stats-dir", dir))

		cfg, err := loadConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, "greedy", cfg.Strategy)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, dir, cfg.Stats.Dir)
	})

	t.Run("rejects an unknown strategy", func(t *testing.T) {
		cfgFile = filepath.Join(t.TempDir(), "agent.json")

		cmd := GetRootCmd()
		require.NoError(t, cmd.Flags().Set("strategy", "psychic"))

		_, err := loadConfig(cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown strategy")
	})
}

func TestGetVersion(t *testing.T) {
	version := GetVersion()
	assert.NotEmpty(t, version)
	assert.True(t, strings.HasPrefix(version, "0."))
}
