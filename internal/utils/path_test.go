package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The config path must land in the platform config dir and create it on
// the way; this is the chain pkg/config resolves its default path through.
func TestPathResolverConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not consulted on windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	pr, err := NewPathResolver()
	require.NoError(t, err)

	path, err := pr.GetConfigPath("config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "spellserve", "config.toml"), path)
	assert.DirExists(t, filepath.Join(tmp, "spellserve"))
}

func TestPathResolverDataDir(t *testing.T) {
	dir := t.TempDir()
	header := []byte{0, 0, 0, 0}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dict_0001.bin"), header, 0o644))

	pr, err := NewPathResolver()
	require.NoError(t, err)

	resolved, err := pr.GetDataDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, resolved)
}

// A directory without chunk files is not accepted as-is; the resolver
// falls through its candidate chain instead of failing.
func TestPathResolverDataDirWithoutChunks(t *testing.T) {
	dir := t.TempDir()

	pr, err := NewPathResolver()
	require.NoError(t, err)

	resolved, err := pr.GetDataDir(dir)
	require.NoError(t, err)
	assert.NotEqual(t, dir, resolved)
}
