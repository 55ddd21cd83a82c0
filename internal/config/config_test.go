package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qepting91/complaint-harvester/internal/config"
	"github.com/qepting91/complaint-harvester/internal/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	assert.Equal(t, harvest.DefaultConfig(), cfg.Harvest())
}

func TestLoad_MergesLocalOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("config.json5", `{
		// shared settings
		base_url: "https://example.test",
		settle_interval_ms: 1500,
		selectors: { card: "div.card" },
	}`)
	write("config.local.json5", `{ settle_interval_ms: 250, headful: true, }`)

	cfg, err := config.Load(filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	assert.True(t, cfg.Headful)

	h := cfg.Harvest()
	assert.Equal(t, "https://example.test", h.BaseURL)
	assert.Equal(t, 250*time.Millisecond, h.SettleInterval)
	assert.Equal(t, "div.card", h.Selectors.Card)
	assert.Equal(t, ".complaint-description", h.Selectors.Body, "unset fields keep defaults")
	assert.Equal(t, 3, h.StagnationThreshold)
	assert.Equal(t, 60*time.Second, h.NavigationTimeout)
}

func TestLoad_ExplicitZeroValuesWin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("config.json5", `{ initial_wait_ms: 0, settle_interval_ms: 0, headful: true, viewport: { width: 800, height: 0 } }`)
	write("config.local.json5", `{ headful: false }`)

	cfg, err := config.Load(filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	assert.False(t, cfg.Headful, "local false overrides base true")

	h := cfg.Harvest()
	assert.Zero(t, h.InitialWait)
	assert.Zero(t, h.SettleInterval)
	assert.Equal(t, 800, h.Viewport.Width)
	assert.Equal(t, harvest.DefaultConfig().Viewport.Height, h.Viewport.Height)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{ base_url: `), 0o644))
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestReadConfig_NotExist(t *testing.T) {
	t.Parallel()

	_, err := config.ReadConfig(filepath.Join(t.TempDir(), "none.json5"), config.Defaults())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.File)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.File) {}},
		{name: "no base url", mutate: func(f *config.File) { f.BaseURL = "" }, wantErr: true},
		{name: "no card selector", mutate: func(f *config.File) { f.Selectors.Card = "" }, wantErr: true},
		{name: "zero threshold", mutate: func(f *config.File) { f.StagnationThreshold = 0 }, wantErr: true},
		{name: "zero timeout", mutate: func(f *config.File) { f.NavigationTimeoutMs = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := config.Defaults()
			tt.mutate(&f)
			if tt.wantErr {
				assert.Error(t, f.Validate())
			} else {
				assert.NoError(t, f.Validate())
			}
		})
	}
}
