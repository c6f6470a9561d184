// Package config reads the YAML settings of the parser front-end.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/k0kubun/sparksql/memory"
	"github.com/k0kubun/sparksql/parser"
	"gopkg.in/yaml.v2"
)

// Config is the merged result of every configuration source.
type Config struct {
	ANSI                           bool
	LegacySetOpsPrecedence         bool
	LegacyExponentLiteralAsDecimal bool
	DoubleQuotedIdentifiers        bool
	// Concurrency bounds how many inputs are parsed at once. 0 parses
	// sequentially, a negative value removes the limit.
	Concurrency int
	// MemoryDebugFill overrides SPARKSQL_MEMORY_DEBUG_FILL when set.
	MemoryDebugFill *bool
}

// Layer is one configuration source. Pointers distinguish absent keys from
// zero values so a layer only overrides what it mentions.
type Layer struct {
	ANSI                           *bool       `yaml:"ansi_enabled"`
	LegacySetOpsPrecedence         *bool       `yaml:"legacy_setops_precedence_enabled"`
	LegacyExponentLiteralAsDecimal *bool       `yaml:"legacy_exponent_literal_as_decimal_enabled"`
	DoubleQuotedIdentifiers        *bool       `yaml:"double_quoted_identifiers"`
	Concurrency                    *int        `yaml:"concurrency"`
	Memory                         MemoryLayer `yaml:"memory"`
}

type MemoryLayer struct {
	DebugFill *bool `yaml:"debug_fill"`
}

// Default is the configuration used when no layer sets a key.
func Default() Config {
	return Config{Concurrency: -1}
}

// ParseString decodes a YAML document. Unknown keys are errors.
func ParseString(yamlString string) (Layer, error) {
	var layer Layer
	if err := yaml.UnmarshalStrict([]byte(yamlString), &layer); err != nil {
		return Layer{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return layer, nil
}

// ParseFile reads and decodes a YAML file.
func ParseFile(path string) (Layer, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, err
	}
	var layer Layer
	if err := yaml.UnmarshalStrict(buf, &layer); err != nil {
		return Layer{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	slog.Debug("Loaded config file", "path", path)
	return layer, nil
}

// Merge applies layers over Default. Later layers win.
func Merge(layers ...Layer) Config {
	config := Default()
	for _, layer := range layers {
		config.merge(layer)
	}
	return config
}

func (c *Config) merge(raw Layer) {
	if raw.ANSI != nil {
		c.ANSI = *raw.ANSI
	}
	if raw.LegacySetOpsPrecedence != nil {
		c.LegacySetOpsPrecedence = *raw.LegacySetOpsPrecedence
	}
	if raw.LegacyExponentLiteralAsDecimal != nil {
		c.LegacyExponentLiteralAsDecimal = *raw.LegacyExponentLiteralAsDecimal
	}
	if raw.DoubleQuotedIdentifiers != nil {
		c.DoubleQuotedIdentifiers = *raw.DoubleQuotedIdentifiers
	}
	if raw.Concurrency != nil {
		c.Concurrency = *raw.Concurrency
	}
	if raw.Memory.DebugFill != nil {
		c.MemoryDebugFill = raw.Memory.DebugFill
	}
}

// ParserOptions returns the parser settings of c.
func (c Config) ParserOptions() parser.Options {
	return parser.Options{
		ANSI:                           c.ANSI,
		LegacySetOpsPrecedence:         c.LegacySetOpsPrecedence,
		LegacyExponentLiteralAsDecimal: c.LegacyExponentLiteralAsDecimal,
		DoubleQuotedIdentifiers:        c.DoubleQuotedIdentifiers,
	}
}

// MemoryOptions returns allocator options honoring memory.debug_fill.
func (c Config) MemoryOptions() memory.Options {
	return memory.Options{DebugFill: c.MemoryDebugFill}
}
