package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEmbeddedFallback(t *testing.T) {
	isolate(t)

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, []string{"left", "a", "h"}, cfg.Keys.Left)
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, localConfigPath), []byte("game:\n  seed: 7\n"), 0o644))

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, int64(7), cfg.Game.Seed)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".t2048"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".t2048", "config.yaml"), []byte("game:\n  seed: 9\n"), 0o644))

	cfg, src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src)
	assert.Equal(t, int64(9), cfg.Game.Seed)
}

func TestLoadCustomPartialFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mine.yaml")
	data := []byte(`
keys:
  left: ["z"]
theme:
  tiles:
    4096: 160
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, src, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, []string{"z"}, cfg.Keys.Left)
	assert.Equal(t, []string{"right", "d", "l"}, cfg.Keys.Right, "unset keys keep defaults")
	assert.Equal(t, uint8(160), cfg.Theme.Tiles[4096])
	assert.Equal(t, uint8(230), cfg.Theme.Tiles[2], "tile colors merge with defaults")
}

func TestLoadCustomMissingFile(t *testing.T) {
	dir := isolate(t)

	_, _, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"duplicate key across directions", "keys:\n  left: [\"up\"]\n"},
		{"empty binding", "keys:\n  quit: []\n"},
		{"non power of two tile", "theme:\n  tiles:\n    3: 100\n"},
		{"narrow cells", "theme:\n  cell_width: 2\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"malformed yaml", "keys: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandHome(t *testing.T) {
	dir := isolate(t)

	got, err := ExpandHome("~/.t2048/results.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".t2048", "results.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
