// Package config holds the tool configuration for typebox-codegen runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/glucoseinc/typebox-codegen/internal/dialect"
)

// Config represents the typebox-codegen configuration.
type Config struct {
	// Model is the path of the schema model JSON file.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Output is the path the generated source is written to. Empty means
	// stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Dialect selects the output grammar version ("0.30" or "1").
	Dialect string `json:"dialect,omitempty" yaml:"dialect,omitempty"`

	// ExactOptional selects the exact-optional property combinator.
	ExactOptional bool `json:"exactOptional,omitempty" yaml:"exactOptional,omitempty"`

	// Recursive lists schema names requiring lazy self-reference handling.
	Recursive []string `json:"recursive,omitempty" yaml:"recursive,omitempty"`

	// Quiet suppresses warning diagnostics.
	Quiet bool `json:"quiet,omitempty" yaml:"quiet,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:   "schema.json",
		Dialect: string(dialect.V1),
	}
}

// Version returns the configured dialect version tag.
func (c *Config) Version() dialect.Version {
	return dialect.Version(c.Dialect)
}

// Validate checks the configuration for values the generator cannot honor.
func (c *Config) Validate() error {
	switch dialect.Version(c.Dialect) {
	case dialect.V030, dialect.V1, "":
	default:
		return fmt.Errorf("unknown dialect version %q (supported: %q, %q)",
			c.Dialect, dialect.V030, dialect.V1)
	}
	return nil
}

// Load reads and parses a config file. The format is chosen by extension:
// .yaml/.yml parse as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &config, nil
}
