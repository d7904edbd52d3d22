package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Suggest.MaxDistance)
	assert.Equal(t, 5, cfg.Suggest.MaxResults)
	assert.False(t, cfg.Suggest.CaseSensitive)
	assert.Equal(t, 60, cfg.Suggest.MaxWordLen)
	assert.Equal(t, 0, cfg.Dict.MaxChunks)
	assert.False(t, cfg.CLI.Verbose)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Suggest.MaxDistance = 3
	cfg.Suggest.MaxResults = 10
	cfg.Dict.Path = "/some/words.txt"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, loaded.Suggest.MaxDistance)
	assert.Equal(t, 10, loaded.Suggest.MaxResults)
	assert.Equal(t, "/some/words.txt", loaded.Dict.Path)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

// A file with a type error in one key should not throw away the keys that
// do parse.
func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[suggest]
max_distance = "two"
max_results = 7

[cli]
verbose = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// the broken key falls back to the default, the rest survives
	assert.Equal(t, 2, cfg.Suggest.MaxDistance)
	assert.Equal(t, 7, cfg.Suggest.MaxResults)
	assert.True(t, cfg.CLI.Verbose)
}

func TestLoadConfigGarbageFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml ==="), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	dist, results := 3, 8
	cs := true
	require.NoError(t, cfg.Update(path, &dist, &results, &cs))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Suggest.MaxDistance)
	assert.Equal(t, 8, loaded.Suggest.MaxResults)
	assert.True(t, loaded.Suggest.CaseSensitive)

	// nil pointers leave values alone
	require.NoError(t, loaded.Update(path, nil, nil, nil))
	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Suggest.MaxResults = 12
	require.NoError(t, SaveConfig(cfg, path))

	loaded, activePath, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, activePath)
	assert.Equal(t, 12, loaded.Suggest.MaxResults)
}
