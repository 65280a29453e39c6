// Package config provides configuration loading and management for hozo2owl.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/semstreams/errors"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/hozo2owl/export"
	"github.com/c360studio/hozo2owl/namespace"
)

// YamatoIRI is the namespace of the YAMATO upper ontology, the default
// "yamato" prefix.
const YamatoIRI = "http://www.hozo.jp/owl/YAMATO.owl#"

// Config represents the complete hozo2owl configuration
type Config struct {
	Namespace NamespaceConfig `yaml:"namespace"`
	Mapping   MappingConfig   `yaml:"mapping"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// NamespaceConfig configures the prefix table
type NamespaceConfig struct {
	// Default is the IRI of the empty prefix. Unprefixed terms resolve
	// against it. Left empty, no "@prefix :" line is written.
	Default string `yaml:"default"`
	// Prefixes maps prefix tokens to IRIs. Order is the preamble order.
	Prefixes *namespace.Table `yaml:"prefixes"`
}

// MappingConfig configures the ontology mapper
type MappingConfig struct {
	// Strict makes distinct labels that map to one term a fatal error
	Strict bool `yaml:"strict"`
}

// OutputConfig configures serialization
type OutputConfig struct {
	// Format is one of turtle, ntriples, rdfxml, jsonld
	Format string `yaml:"format"`
	// Verify re-parses the generated Turtle before it is written
	Verify bool `yaml:"verify"`
}

// LogConfig configures the logger
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
	// Format is text or json
	Format string `yaml:"format"`
}

// MetricsConfig configures metrics output
type MetricsConfig struct {
	// Textfile, when set, receives Prometheus metrics after each run
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Namespace: NamespaceConfig{
			Prefixes: namespace.MustTable(namespace.Entry{Prefix: "yamato", IRI: YamatoIRI}),
		},
		Output: OutputConfig{
			Format: string(export.FormatTurtle),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := c.Namespace.Prefixes.Validate(); err != nil {
		return invalid("namespace.prefixes: %v", err)
	}
	format, err := export.ParseFormat(c.Output.Format)
	if err != nil {
		return invalid("output.format: %v", err)
	}
	if c.Namespace.Default == "" {
		if format != export.FormatTurtle {
			return invalid("output.format %s requires namespace.default", format)
		}
		if c.Output.Verify {
			return invalid("output.verify requires namespace.default")
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return invalid("log.level: %v", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errors.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", l.Level)
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// decodeFile unmarshals the YAML file at path into config.
func decodeFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("%w: failed to parse config file %s: %v", errors.ErrInvalidConfig, path, err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Namespace
	if other.Namespace.Default != "" {
		c.Namespace.Default = other.Namespace.Default
	}
	if other.Namespace.Prefixes.Len() > 0 {
		c.Namespace.Prefixes = other.Namespace.Prefixes
	}

	// Mapping
	if other.Mapping.Strict {
		c.Mapping.Strict = true
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Verify {
		c.Output.Verify = true
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	// Metrics
	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}
}
