// Package config provides configuration loading for leetboard.
// Precedence, lowest to highest: built-in defaults, config file,
// LEETBOARD_* environment variables. CLI flags override the result.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/leetboard/pkg/fsutil"
)

// DefaultConfigFile is the project-level config file discovered in the
// working directory when no explicit path is given.
const DefaultConfigFile = ".leetboard.yaml"

// envVarPrefix is the prefix for all leetboard environment variables.
const envVarPrefix = "LEETBOARD_"

// DefaultWindowDays is the reporting window used when neither config nor
// flags specify one.
const DefaultWindowDays = 7

// Config holds the resolved application configuration.
type Config struct {
	// Format selects the report renderer: "text" or "html".
	Format string `yaml:"format"`

	// Output is the base filename reports are written to.
	// Empty means print to stdout.
	Output string `yaml:"output"`

	// Days is the trailing reporting window shown in report titles.
	Days int `yaml:"days"`

	// Message is an optional completion message appended to reports.
	Message string `yaml:"message"`

	// LogLevel controls logger verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Format:   "text",
		Days:     DefaultWindowDays,
		LogLevel: "info",
	}
}

// Load resolves the configuration. A .env file in the working directory is
// loaded first (missing is fine), then the YAML config file, then
// environment overrides. explicitPath skips default-file discovery; loading
// fails if an explicitly named file does not exist, but a missing default
// file is not an error.
func Load(ctx context.Context, explicitPath string) (Config, error) {
	// .env only populates the process environment; real env vars win.
	_ = godotenv.Load()

	cfg := Default()

	path := explicitPath
	if path == "" {
		path = DefaultConfigFile
	}

	content, err := fsutil.ReadFile(ctx, path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fsutil.ErrNotFound) && explicitPath == "":
		// No project config; defaults apply.
	default:
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv applies LEETBOARD_* environment variable overrides.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(envVarPrefix + "OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(envVarPrefix + "MESSAGE"); v != "" {
		cfg.Message = v
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envVarPrefix + "DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sDAYS %q: %w", envVarPrefix, v, err)
		}
		cfg.Days = days
	}
	return nil
}
