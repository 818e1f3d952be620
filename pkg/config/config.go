// Package config loads bookshelf settings from .bookshelf.yaml, the
// environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/theme"
)

const (
	keyPageSize = "page_size"
	keyTheme    = "theme"
	keyLogFile  = "log_file"
)

// Config is the resolved configuration.
type Config struct {
	PageSize int    `json:"page_size" yaml:"page_size"`
	Theme    string `json:"theme" yaml:"theme"`
	LogFile  string `json:"log_file" yaml:"log_file"`
}

// Options control where configuration is looked up. The zero value reads
// the standard locations.
type Options struct {
	// Paths are extra directories searched before the defaults.
	Paths []string
	// SkipDotEnv disables loading .env from the working directory.
	SkipDotEnv bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PageSize: catalog.DefaultPageSize,
		Theme:    string(theme.System),
	}
}

// Load reads .bookshelf.yaml and BOOKSHELF_* variables. A missing config
// file is not an error.
func Load(opts Options) (Config, error) {
	if !opts.SkipDotEnv {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: reading .env: %w", err)
		}
	}

	def := Default()
	v := viper.New()
	v.SetDefault(keyPageSize, def.PageSize)
	v.SetDefault(keyTheme, def.Theme)
	v.SetDefault(keyLogFile, def.LogFile)
	v.SetConfigName(".bookshelf") // .yaml is implicit
	v.SetEnvPrefix("BOOKSHELF")
	v.AutomaticEnv()

	for _, p := range opts.Paths {
		v.AddConfigPath(p)
	}
	if override := os.Getenv("BOOKSHELF_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	cfg := Config{
		PageSize: v.GetInt(keyPageSize),
		Theme:    v.GetString(keyTheme),
		LogFile:  v.GetString(keyLogFile),
	}
	if cfg.LogFile != "" {
		expanded, err := homedir.Expand(cfg.LogFile)
		if err != nil {
			return Config{}, fmt.Errorf("config: log_file: %w", err)
		}
		cfg.LogFile = expanded
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("config: page_size must be positive, got %d", c.PageSize)
	}
	switch theme.Name(strings.ToLower(c.Theme)) {
	case theme.Day, theme.Night, theme.System:
	default:
		return fmt.Errorf("config: invalid theme %q: must be one of day, night, system", c.Theme)
	}
	return nil
}
