package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rzbill/armkit/pkg/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ARMKIT_LOG_LEVEL.
const EnvPrefix = "ARMKIT"

type Config struct {
	// DataDir holds the snapshot store.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Output is the default output format of decode and get: json or yaml.
	Output string `yaml:"output" mapstructure:"output"`

	// Color enables colored tables and diagnostics.
	Color bool `yaml:"color" mapstructure:"color"`

	// MaxPages bounds page walks. Zero means unbounded.
	MaxPages int `yaml:"max_pages" mapstructure:"max_pages"`

	Log log.Config `yaml:"log" mapstructure:"log"`
}

func Default() *Config {
	return &Config{
		DataDir:  filepath.Join(defaultHome(), "data"),
		Output:   "json",
		Color:    true,
		MaxPages: 1000,
		Log:      log.Config{Level: "warn", Format: "text", Output: "stderr", Color: true},
	}
}

func defaultHome() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		return ".armkit"
	}
	return filepath.Join(home, ".armkit")
}

// DefaultPath is the config file read when no path is given.
func DefaultPath() string {
	return filepath.Join(defaultHome(), "config.yaml")
}

// Load reads the YAML config at path over the defaults and applies ARMKIT_
// environment overrides. A missing file at the default location is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultHome())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment overrides apply even
// when the config file omits them.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("output", d.Output)
	v.SetDefault("color", d.Color)
	v.SetDefault("max_pages", d.MaxPages)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.color", d.Log.Color)
	v.SetDefault("log.redact", []string{"triggerUri"})
}

func (c *Config) Validate() error {
	switch c.Output {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q: want json or yaml", c.Output)
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
