// Package config holds the settings of the sequence window, read by
// Viper from an optional dna-sequence-pro.yaml and DNAPRO_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// Name is the config file base name, without extension.
	Name = "dna-sequence-pro"
	// EnvPrefix is prepended to upper-cased keys, e.g. DNAPRO_LOG_LEVEL.
	EnvPrefix = "DNAPRO"
)

// AppearanceConfig selects the window theme.
type AppearanceConfig struct {
	// system, light or dark
	Mode string `mapstructure:"mode"`
	// blue, green or dark-blue
	ColorTheme string `mapstructure:"color_theme"`
}

// WindowConfig is the initial window size.
type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// BatchConfig is the toolbar's initial batch insert values.
type BatchConfig struct {
	Char  string `mapstructure:"char"`
	Count string `mapstructure:"count"`
}

// InputConfig is the initial content of the input area.
type InputConfig struct {
	Default string `mapstructure:"default"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Config is the root-level settings struct.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance"`
	Window     WindowConfig     `mapstructure:"window"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Input      InputConfig      `mapstructure:"input"`
	Log        LogConfig        `mapstructure:"log"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("appearance.mode", "system")
	v.SetDefault("appearance.color_theme", "blue")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 650)
	v.SetDefault("batch.char", "T")
	v.SetDefault("batch.count", "10")
	v.SetDefault("input.default", "GTCA")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

// New returns a Viper instance with defaults, environment binding and
// the standard search paths. When file is non-empty only that file is
// read.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", Name))
	}
	return v
}

// Load reads the config file, if any, and decodes v into a Config. A
// missing file in the search paths is not an error.
func Load(v *viper.Viper) (Config, error) {
	var c Config

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects values the window cannot apply.
func (c Config) Validate() error {
	switch c.Appearance.Mode {
	case "system", "light", "dark":
	default:
		return fmt.Errorf("appearance.mode: unsupported value %q", c.Appearance.Mode)
	}
	switch c.Appearance.ColorTheme {
	case "blue", "green", "dark-blue":
	default:
		return fmt.Errorf("appearance.color_theme: unsupported value %q", c.Appearance.ColorTheme)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}
