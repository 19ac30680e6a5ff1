// Package config resolves lsftui settings from defaults, an optional TOML
// file, LSFTUI_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LSFTUI_VIDEO_PLAYER.
const EnvPrefix = "LSFTUI"

// Config holds application configuration.
type Config struct {
	Dictionary string        `mapstructure:"dictionary"`
	Tick       time.Duration `mapstructure:"tick"`
	Log        LogConfig     `mapstructure:"log"`
	Remind     RemindConfig  `mapstructure:"remind"`
	Video      VideoConfig   `mapstructure:"video"`
}

// LogConfig holds the log file settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// RemindConfig holds reminder mode settings.
type RemindConfig struct {
	Every       time.Duration `mapstructure:"every"`
	Description bool          `mapstructure:"description"`
}

// VideoConfig holds video lookup settings.
type VideoConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Player  string        `mapstructure:"player"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// New returns a viper instance with defaults and environment overrides
// installed. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("dictionary", "LSF.yaml")
	v.SetDefault("tick", 200*time.Millisecond)
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("remind.every", 30*time.Second)
	v.SetDefault("remind.description", false)
	v.SetDefault("video.base_url", "https://dico.elix-lsf.fr/dictionnaire/")
	v.SetDefault("video.player", "mpv")
	v.SetDefault("video.timeout", 15*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// ReadFile reads the config file into v. An explicit path (from --config or
// LSFTUI_CONFIG) must exist; the default location is optional.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// DefaultDir returns $XDG_CONFIG_HOME/lsftui, or ~/.config/lsftui.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lsftui"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lsftui"), nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Dictionary) == "":
		return errors.New("config: dictionary path is empty")
	case c.Tick <= 0:
		return fmt.Errorf("config: tick must be positive, got %s", c.Tick)
	case c.Remind.Every <= 0:
		return fmt.Errorf("config: remind.every must be positive, got %s", c.Remind.Every)
	case c.Video.Timeout <= 0:
		return fmt.Errorf("config: video.timeout must be positive, got %s", c.Video.Timeout)
	case strings.TrimSpace(c.Video.BaseURL) == "":
		return errors.New("config: video.base_url is empty")
	}
	return nil
}
