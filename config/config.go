// Package config loads the demo's settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/rhythmui"
	"github.com/phanxgames/rhythmui/mania"
	"github.com/spf13/viper"
	"github.com/tanema/gween/ease"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig
	Mania   ManiaConfig
	Logo    LogoConfig
	Profile ProfileConfig
	Debug   bool
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// ManiaConfig describes the key area stage.
type ManiaConfig struct {
	Columns       int
	ColumnWidth   float64 `mapstructure:"column_width"`
	Direction     string
	Keys          []string
	AccentColours []string `mapstructure:"accent_colours"`
}

// LogoConfig controls logo tracking transitions. Duration is in seconds.
type LogoConfig struct {
	Size     float64
	Duration float64
	Easing   string
}

// ProfileConfig holds profile header settings. Hue is in degrees.
type ProfileConfig struct {
	Hue         float64
	LocalUserID int `mapstructure:"local_user_id"`
}

// DefaultPath returns the config file used when neither an explicit path nor
// RHYTHMUI_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "rhythmui", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "rhythmui demo")
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("mania.columns", 4)
	v.SetDefault("mania.column_width", mania.DefaultColumnWidth)
	v.SetDefault("mania.direction", "down")
	v.SetDefault("mania.keys", []string{"D", "F", "J", "K"})
	v.SetDefault("mania.accent_colours", []string{"#ff5fa8", "#66ccff", "#66ccff", "#ff5fa8"})
	v.SetDefault("logo.size", 200)
	v.SetDefault("logo.duration", 0.5)
	v.SetDefault("logo.easing", "out_quint")
	v.SetDefault("profile.hue", 333)
	v.SetDefault("profile.local_user_id", 1)
	v.SetDefault("debug", false)
}

// Load reads configuration from file and env. An explicit path wins over
// RHYTHMUI_CONFIG, which wins over DefaultPath; only an explicitly named file
// has to exist. Env var overrides use prefix RHYTHMUI_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("RHYTHMUI_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RHYTHMUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("window.title", cfg.Window.Title)
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("mania.columns", cfg.Mania.Columns)
	v.Set("mania.column_width", cfg.Mania.ColumnWidth)
	v.Set("mania.direction", cfg.Mania.Direction)
	v.Set("mania.keys", cfg.Mania.Keys)
	v.Set("mania.accent_colours", cfg.Mania.AccentColours)
	v.Set("logo.size", cfg.Logo.Size)
	v.Set("logo.duration", cfg.Logo.Duration)
	v.Set("logo.easing", cfg.Logo.Easing)
	v.Set("profile.hue", cfg.Profile.Hue)
	v.Set("profile.local_user_id", cfg.Profile.LocalUserID)
	v.Set("debug", cfg.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks that every setting can be converted. It returns the first
// problem found.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Mania.Columns <= 0 {
		return fmt.Errorf("config: mania.columns must be positive, got %d", c.Mania.Columns)
	}
	if _, err := c.KeyBindings(); err != nil {
		return err
	}
	if _, err := c.Accents(); err != nil {
		return err
	}
	if _, err := c.Direction(); err != nil {
		return err
	}
	if _, err := c.Easing(); err != nil {
		return err
	}
	if c.Logo.Size <= 0 || c.Logo.Duration < 0 {
		return fmt.Errorf("config: logo size %v and duration %v out of range", c.Logo.Size, c.Logo.Duration)
	}
	return nil
}

// KeyBindings resolves one key per column.
func (c Config) KeyBindings() ([]ebiten.Key, error) {
	if len(c.Mania.Keys) != c.Mania.Columns {
		return nil, fmt.Errorf("config: mania.keys has %d entries for %d columns", len(c.Mania.Keys), c.Mania.Columns)
	}
	keys := make([]ebiten.Key, len(c.Mania.Keys))
	for i, name := range c.Mania.Keys {
		k, err := rhythmui.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("config: mania.keys[%d]: %w", i, err)
		}
		keys[i] = k
	}
	return keys, nil
}

// Accents resolves one accent colour per column.
func (c Config) Accents() ([]rhythmui.Color, error) {
	if len(c.Mania.AccentColours) != c.Mania.Columns {
		return nil, fmt.Errorf("config: mania.accent_colours has %d entries for %d columns", len(c.Mania.AccentColours), c.Mania.Columns)
	}
	out := make([]rhythmui.Color, len(c.Mania.AccentColours))
	for i, hex := range c.Mania.AccentColours {
		col, err := rhythmui.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("config: mania.accent_colours[%d]: %w", i, err)
		}
		out[i] = col
	}
	return out, nil
}

// Direction resolves mania.direction, "up" or "down".
func (c Config) Direction() (mania.ScrollingDirection, error) {
	switch strings.ToLower(c.Mania.Direction) {
	case "up":
		return mania.ScrollingUp, nil
	case "down", "":
		return mania.ScrollingDown, nil
	}
	return 0, fmt.Errorf("config: mania.direction %q is not up or down", c.Mania.Direction)
}

// Easing resolves logo.easing.
func (c Config) Easing() (ease.TweenFunc, error) {
	fn, err := rhythmui.EasingByName(c.Logo.Easing)
	if err != nil {
		return nil, fmt.Errorf("config: logo.easing: %w", err)
	}
	return fn, nil
}
