package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solitaire.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
seed: 42
show_hidden: true
color: never
banner: false
metrics_addr: "127.0.0.1:9090"
prompt: "> "
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.False(t, cfg.Banner)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "127.0.0.1:9090", cfg.MetricsAddr)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "debug: true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.True(t, cfg.Banner)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown key", content: "speed: 3\n"},
		{name: "bad color", content: "color: purple\n", wantErr: ErrInvalidColor},
		{name: "negative seed", content: "seed: -1\n"},
		{name: "malformed yaml", content: "seed: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
