// Package config loads settings for the command line tool from defaults,
// an optional YAML file, environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files
	AppName = "apetag"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "APETAG"
)

// Config holds the application configuration
type Config struct {
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`

	// MaxTagSize limits the tag data read from a file. 0 means no limit.
	MaxTagSize int64 `mapstructure:"max_tag_size"`

	// BackupSuffix, when set, keeps a copy of every file before it is modified.
	BackupSuffix string `mapstructure:"backup_suffix"`

	// Output selects "text" or "json" for commands that print tags.
	Output string `mapstructure:"output"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// New returns a viper instance with defaults and environment bindings set.
// Flags can be bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults sets default values for configuration
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("max_tag_size", 0)
	v.SetDefault("backup_suffix", "")
	v.SetDefault("output", "text")
}

// Load reads cfgFile, or searches for apetag.yaml in the current
// directory when cfgFile is empty, and returns the merged configuration.
// A missing searched-for file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output %q: want text or json", c.Output)
	}
	switch c.LogFormat {
	case "human", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want human or json", c.LogFormat)
	}
	if c.MaxTagSize < 0 {
		return fmt.Errorf("invalid max_tag_size %d: must not be negative", c.MaxTagSize)
	}
	return nil
}
