// Package config provides Viper-based configuration loading for the
// mapping generator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"proguard-codegen/internal/gen"
	"proguard-codegen/internal/naming"
)

// InputConfig holds mapping acquisition settings.
type InputConfig struct {
	// Path is the local mapping file location.
	Path string `mapstructure:"path"`
	// URL is the download location used when Path does not exist. Empty
	// disables downloading, making a missing Path fatal.
	URL string `mapstructure:"url"`
}

// OutputConfig holds generation output settings.
type OutputConfig struct {
	// Dir is the output root. It is cleared at the start of every run.
	Dir string `mapstructure:"dir"`
	// BasePackage is the dot-separated package prefix for generated classes.
	BasePackage string `mapstructure:"base_package"`
	// Strategy selects constant emission: "plain" or "static-init".
	Strategy string `mapstructure:"strategy"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants, reporting every violation.
func (c Config) Validate() error {
	var errs []string

	if c.Input.Path == "" {
		errs = append(errs, "input.path must not be empty")
	}
	if c.Output.Dir == "" {
		errs = append(errs, "output.dir must not be empty")
	}
	if _, err := gen.ParseStrategy(c.Output.Strategy); err != nil {
		errs = append(errs, "output.strategy: "+err.Error())
	}
	if err := validateBasePackage(c.Output.BasePackage); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// validateBasePackage requires every non-empty segment to already be a valid
// identifier. Sanitizing a user-chosen prefix silently would move the whole
// generated tree.
func validateBasePackage(basePackage string) error {
	for _, segment := range strings.Split(basePackage, ".") {
		if segment == "" {
			continue
		}
		if naming.Identifier(segment) != segment {
			return fmt.Errorf("output.base_package segment %q is not a valid identifier", segment)
		}
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// Default returns the configuration built from defaults and environment
// variable overrides only, for running without a config file.
func Default() (Config, error) {
	return LoadFromViper(newViper())
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with MAPGEN_ prefix
	v.SetEnvPrefix("MAPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "mapping.txt")
	v.SetDefault("input.url", "")

	v.SetDefault("output.dir", "generated")
	v.SetDefault("output.base_package", "mappings")
	v.SetDefault("output.strategy", "plain")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
