package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[cms]
provider = "sanity"
project_id = "abc123"

[ui]
theme = "light"

[carousel]
speed = 0.05
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderSanity, cfg.CMS.Provider)
	assert.Equal(t, "abc123", cfg.CMS.ProjectID)
	assert.Equal(t, "production", cfg.CMS.Dataset)
	assert.False(t, cfg.UI.DarkTheme())
	assert.InDelta(t, 0.05, cfg.Carousel.Speed, 1e-9)
	assert.InDelta(t, 0.5, cfg.Carousel.Damping, 1e-9)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[ui\ntheme="), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	wrong := filepath.Join(dir, "wrong.toml")
	require.NoError(t, os.WriteFile(wrong, []byte("[ui]\ntheme = \"sepia\"\n[carousel]\ndamping = 2.0\n"), 0o644))
	_, err = Load(wrong)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
	assert.Contains(t, err.Error(), "carousel.damping")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.UI.Theme = ThemeLight
	cfg.Jellyfin.URL = "http://jellyfin.local:8096"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "shutterfolio"), dir)
}

func TestContactDelay(t *testing.T) {
	d, err := ContactConfig{SimulatedDelay: "250ms"}.Delay()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	d, err = ContactConfig{}.Delay()
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = ContactConfig{SimulatedDelay: "soon"}.Delay()
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	w.debounce = 30 * time.Millisecond

	got := make(chan *Config, 4)
	w.OnChange(func(c *Config) { got <- c })
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0o644))

	select {
	case c := <-got:
		assert.False(t, c.UI.DarkTheme())
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcher_InvalidFileKeepsSubscribersQuiet(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	core, logs := observer.New(zapcore.WarnLevel)
	w, err := NewWatcher(path, zap.New(core))
	require.NoError(t, err)
	w.debounce = 30 * time.Millisecond

	called := make(chan struct{}, 1)
	w.OnChange(func(*Config) { called <- struct{}{} })
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"sepia\"\n"), 0o644))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("config reload failed, keeping current settings").Len() > 0
	}, 5*time.Second, 20*time.Millisecond)
	select {
	case <-called:
		t.Fatal("subscriber ran for an invalid config")
	default:
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.debounce = 30 * time.Millisecond

	called := make(chan struct{}, 1)
	w.OnChange(func(*Config) { called <- struct{}{} })
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	select {
	case <-called:
		t.Fatal("reload for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_SubscriberAddedDuringReloadWaitsForNext(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	w.debounce = 30 * time.Millisecond

	first := make(chan *Config, 4)
	late := make(chan *Config, 4)
	var once sync.Once
	w.OnChange(func(c *Config) {
		once.Do(func() {
			w.OnChange(func(c *Config) { late <- c })
		})
		first <- c
	})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0o644))
	select {
	case c := <-first:
		assert.False(t, c.UI.DarkTheme())
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	select {
	case <-late:
		t.Fatal("subscriber added mid-reload ran for the same reload")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0o644))
	select {
	case c := <-late:
		assert.True(t, c.UI.DarkTheme())
	case <-time.After(5 * time.Second):
		t.Fatal("late subscriber missed the next reload")
	}
}
