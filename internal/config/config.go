// Package config provides configuration management for mcpreg using Viper.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides (MCPREG_SERVER_ADDR, ...).
const EnvPrefix = "MCPREG"

// CurrentVersion is the only configuration schema version understood.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version       int          `mapstructure:"version" yaml:"version"`
	Server        ServerConfig `mapstructure:"server" yaml:"server"`
	DefaultClient string       `mapstructure:"default_client" yaml:"default_client,omitempty"`
	CatalogFile   string       `mapstructure:"catalog_file" yaml:"catalog_file,omitempty"`
	Slug          SlugConfig   `mapstructure:"slug" yaml:"slug"`
}

// ServerConfig holds settings for `mcpreg serve`.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// SlugConfig controls how package names are derived from authors.
type SlugConfig struct {
	// SanitizeAuthor replaces whitespace in lower-cased author names with
	// hyphens. Off by default so "PostgreSQL Team" stays "postgresql team".
	SanitizeAuthor bool `mapstructure:"sanitize_author" yaml:"sanitize_author"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Init resets Viper and installs defaults, search paths and env binding.
// Call this once at application startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	viper.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	viper.SetDefault("default_client", d.DefaultClient)
	viper.SetDefault("catalog_file", d.CatalogFile)
	viper.SetDefault("slug.sanitize_author", d.Slug.SanitizeAuthor)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is an error.
// If path is empty, it searches the default locations and falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load: defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the path of the configuration file Viper read, if any.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
