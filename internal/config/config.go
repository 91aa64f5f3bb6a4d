package config

import (
	"errors"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GLASSICON_OUT_DIR.
const EnvPrefix = "GLASSICON"

// ServeConfig holds settings for the HTTP server.
type ServeConfig struct {
	Listen string `mapstructure:"listen" toml:"listen"`
	Dev    bool   `mapstructure:"dev" toml:"dev"`
	QR     bool   `mapstructure:"qr" toml:"qr"`
}

// PreviewConfig holds settings for the framebuffer preview.
type PreviewConfig struct {
	Device   string `mapstructure:"device" toml:"device"`
	StdioLog string `mapstructure:"stdio_log" toml:"stdio_log"`
}

// Config holds all runtime configuration.
// Values are populated from .glassicon.toml, GLASSICON_* env vars, and CLI flags.
type Config struct {
	OutDir    string        `mapstructure:"out_dir" toml:"out_dir"`
	Variants  []int         `mapstructure:"variants" toml:"variants"`
	Antialias bool          `mapstructure:"antialias" toml:"antialias"`
	Watch     bool          `mapstructure:"watch" toml:"watch"`
	Debug     bool          `mapstructure:"debug" toml:"debug"`
	LogFile   string        `mapstructure:"log_file" toml:"log_file"`
	Serve     ServeConfig   `mapstructure:"serve" toml:"serve"`
	Preview   PreviewConfig `mapstructure:"preview" toml:"preview"`
}

// BindEnv makes every key overridable from the environment. Nested keys
// use underscores, e.g. serve.listen is read from GLASSICON_SERVE_LISTEN.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// SetDefaults registers built-in defaults on the global viper instance.
func SetDefaults() {
	viper.SetDefault("out_dir", ".")
	viper.SetDefault("variants", []int{128, 64})
	viper.SetDefault("antialias", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("debug", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("serve.listen", ":8080")
	viper.SetDefault("serve.dev", false)
	viper.SetDefault("serve.qr", false)
	viper.SetDefault("preview.device", "/dev/fb0")
	viper.SetDefault("preview.stdio_log", "")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would make every command fail.
func (c Config) Validate() error {
	if c.OutDir == "" {
		return errors.New("out_dir must not be empty")
	}
	seen := make(map[int]bool, len(c.Variants))
	for _, size := range c.Variants {
		if size <= 0 {
			return fmt.Errorf("variant size must be positive, got %d", size)
		}
		if seen[size] {
			return fmt.Errorf("variant size %d listed twice", size)
		}
		seen[size] = true
	}
	if c.Serve.Listen == "" {
		return errors.New("serve.listen must not be empty")
	}
	return nil
}

// TOML renders the configuration in config-file form.
func (c Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
