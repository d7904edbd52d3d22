package main

import (
	"flag"
	"testing"

	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	registerFlags(fs, config.DefaultConfig())
	require.NoError(t, fs.Parse(args))
	return fs
}

// A config file's values must survive the flag merge when the matching
// flags were not passed.
func TestApplyFlagOverridesKeepsConfigValues(t *testing.T) {
	fs := parseFlags(t)

	cfg := config.DefaultConfig()
	cfg.Suggest.MaxDistance = 3
	cfg.Suggest.MaxResults = 12
	cfg.Suggest.CaseSensitive = true
	cfg.Dict.MaxChunks = 4
	cfg.CLI.Verbose = true

	applyFlagOverrides(fs, cfg)

	assert.Equal(t, 3, cfg.Suggest.MaxDistance)
	assert.Equal(t, 12, cfg.Suggest.MaxResults)
	assert.True(t, cfg.Suggest.CaseSensitive)
	assert.Equal(t, 4, cfg.Dict.MaxChunks)
	assert.True(t, cfg.CLI.Verbose)
}

func TestApplyFlagOverridesFlagsWin(t *testing.T) {
	fs := parseFlags(t, "-dist", "1", "-n", "2", "-clean")

	cfg := config.DefaultConfig()
	cfg.Suggest.MaxDistance = 3
	cfg.Suggest.MaxResults = 12
	cfg.CLI.Verbose = true

	applyFlagOverrides(fs, cfg)

	// passed flags override the file
	assert.Equal(t, 1, cfg.Suggest.MaxDistance)
	assert.Equal(t, 2, cfg.Suggest.MaxResults)
	assert.True(t, cfg.CLI.CleanOutput)
	// untouched keys keep the file's values
	assert.True(t, cfg.CLI.Verbose)
}

// Passing a flag at its default value still counts as an explicit choice.
func TestApplyFlagOverridesExplicitDefault(t *testing.T) {
	fs := parseFlags(t, "-dist", "2")

	cfg := config.DefaultConfig()
	cfg.Suggest.MaxDistance = 3

	applyFlagOverrides(fs, cfg)
	assert.Equal(t, 2, cfg.Suggest.MaxDistance)
}
