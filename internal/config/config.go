package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Theme names accepted in [ui] theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// CMS providers accepted in [cms] provider.
const (
	ProviderNone     = ""
	ProviderSanity   = "sanity"
	ProviderJellyfin = "jellyfin"
)

type Config struct {
	CMS      CMSConfig      `toml:"cms"`
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	UI       UIConfig       `toml:"ui"`
	Carousel CarouselConfig `toml:"carousel"`
	Contact  ContactConfig  `toml:"contact"`
	Keybinds KeybindConfig  `toml:"keybinds"`
	Server   ServerConfig   `toml:"server"`
}

type CMSConfig struct {
	Provider   string `toml:"provider"`
	ProjectID  string `toml:"project_id"`
	Dataset    string `toml:"dataset"`
	APIVersion string `toml:"api_version"`
	Token      string `toml:"token"`
	UseCDN     bool   `toml:"use_cdn"`
	// URL points the query client at a self-hosted content server.
	URL string `toml:"url"`
}

type JellyfinConfig struct {
	URL       string `toml:"url"`
	Token     string `toml:"token"`
	UserID    string `toml:"user_id"`
	LibraryID string `toml:"library_id"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Theme      string `toml:"theme"`
}

type CarouselConfig struct {
	// Speed is in pixels per millisecond.
	Speed        float64 `toml:"speed"`
	Damping      float64 `toml:"damping"`
	TapThreshold float64 `toml:"tap_threshold"`
}

type ContactConfig struct {
	Endpoint string `toml:"endpoint"`
	// SimulatedDelay is used when Endpoint is empty, e.g. "1.5s".
	SimulatedDelay string `toml:"simulated_delay"`
}

type KeybindConfig struct {
	ToggleTheme string `toml:"toggle_theme"`
	Fullscreen  string `toml:"fullscreen"`
	// Quit is pressed together with Ctrl.
	Quit        string `toml:"quit"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		CMS: CMSConfig{
			Dataset:    "production",
			APIVersion: "2024-01-01",
		},
		UI: UIConfig{
			Width:  1600,
			Height: 900,
			Theme:  ThemeDark,
		},
		Carousel: CarouselConfig{
			Speed:        0.033,
			Damping:      0.5,
			TapThreshold: 10,
		},
		Contact: ContactConfig{
			SimulatedDelay: "1.5s",
		},
		Keybinds: KeybindConfig{
			ToggleTheme: "T",
			Fullscreen:  "F",
			Quit:        "Q",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:3333",
		},
	}
}

// Validate reports every invalid setting joined.
func (c *Config) Validate() error {
	var errs []error
	switch c.CMS.Provider {
	case ProviderNone, ProviderSanity, ProviderJellyfin:
	default:
		errs = append(errs, fmt.Errorf("cms.provider: unknown provider %q", c.CMS.Provider))
	}
	switch strings.ToLower(c.UI.Theme) {
	case ThemeDark, ThemeLight:
	default:
		errs = append(errs, fmt.Errorf("ui.theme: must be %q or %q, got %q", ThemeDark, ThemeLight, c.UI.Theme))
	}
	if c.UI.Width < 0 || c.UI.Height < 0 {
		errs = append(errs, errors.New("ui: width and height must not be negative"))
	}
	if c.Carousel.Speed < 0 {
		errs = append(errs, errors.New("carousel.speed: must not be negative"))
	}
	if c.Carousel.Damping < 0 || c.Carousel.Damping > 1 {
		errs = append(errs, errors.New("carousel.damping: must be between 0 and 1"))
	}
	if c.Carousel.TapThreshold < 0 {
		errs = append(errs, errors.New("carousel.tap_threshold: must not be negative"))
	}
	if _, err := c.Contact.Delay(); err != nil {
		errs = append(errs, fmt.Errorf("contact.simulated_delay: %w", err))
	}
	return errors.Join(errs...)
}

// Delay parses SimulatedDelay. Empty means no delay.
func (c ContactConfig) Delay() (time.Duration, error) {
	if c.SimulatedDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.SimulatedDelay)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.New("must not be negative")
	}
	return d, nil
}

// DarkTheme reports whether the configured theme is dark.
func (c UIConfig) DarkTheme() bool {
	return !strings.EqualFold(c.Theme, ThemeLight)
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "shutterfolio"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, or at ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, or to ConfigPath when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
