package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the directory being validated.
const ConfigFileName = "nftmeta.yaml"

// Environment variables that override the config file.
const (
	EnvVersion        = "NFTMETA_VERSION"
	EnvFormat         = "NFTMETA_FORMAT"
	EnvFailOnWarnings = "NFTMETA_FAIL_ON_WARNINGS"
)

type ProjectConfig struct {
	Version        string `yaml:"version,omitempty"`
	Format         string `yaml:"format,omitempty"`
	FailOnWarnings bool   `yaml:"fail_on_warnings,omitempty"`
	KeepGoing      bool   `yaml:"keep_going,omitempty"`
}

// Default returns the configuration used when nothing else is set.
// An empty Version means the validator's default schema version.
func Default() *ProjectConfig {
	return &ProjectConfig{Format: nftmeta.OutputFormatText}
}

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", nftmeta.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the
// directory carries no config file.
func LoadOrDefault(sourcePath string) (*ProjectConfig, error) {
	cfg, err := Load(sourcePath)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides fields from the process environment. lookup is
// os.LookupEnv in production.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvVersion); ok && v != "" {
		c.Version = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup(EnvFailOnWarnings); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", nftmeta.ErrInvalidConfig, EnvFailOnWarnings, v)
		}
		c.FailOnWarnings = b
	}
	return nil
}

// Validate checks field values.
func (c *ProjectConfig) Validate() error {
	switch c.Format {
	case nftmeta.OutputFormatText, nftmeta.OutputFormatJSON, nftmeta.OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", nftmeta.ErrInvalidConfig, c.Format)
	}
}
