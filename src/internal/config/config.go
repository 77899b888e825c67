// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/report"
)

// EnvFile names the environment variable consulted when no config path is given.
const EnvFile = "TLS_CERT_METADATA_CONFIG"

// Defaults applied to zero values.
const (
	DefaultBufferSize     = report.DefaultBufferSize
	DefaultDNFormat       = report.DNFormatRFC2253
	DefaultTimeoutSeconds = 10
)

// ErrInvalidConfig indicates a config document rejected by the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Schema returns the JSON Schema config documents are validated against.
func Schema() []byte { return schemaJSON }

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings of the metadata tools.
type Config struct {
	// BufferSize is the per-field extraction buffer capacity in bytes.
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
	// DNFormat is "rfc2253" or "oneline".
	DNFormat string `json:"dnFormat" yaml:"dnFormat"`
	// TimeoutSeconds bounds remote TLS handshakes.
	TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	// Fields lists the report fields, empty for all.
	Fields []string `json:"fields" yaml:"fields"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.DNFormat == "" {
		c.DNFormat = DefaultDNFormat
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// Timeout returns TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration { return time.Duration(c.TimeoutSeconds) * time.Second }

// ReportOptions converts c into options for [report.Extract].
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		BufferSize: c.BufferSize,
		DNFormat:   c.DNFormat,
		Fields:     c.Fields,
	}
}

// Load reads the config at path, or at $TLS_CERT_METADATA_CONFIG when path is
// empty. With neither set, Default is returned.
//
// Configuration Priority:
//  1. Values from the file, after schema validation
//  2. Defaults for anything left zero
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}
	return ParseFile(path, data)
}

// ParseFile validates and decodes a config document, taking its format from
// the extension of name.
func ParseFile(name string, data []byte) (*Config, error) {
	return parse(data, detectFormat(name))
}

// detectFormat determines the configuration file format based on file extension.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func parse(data []byte, f format) (*Config, error) {
	var doc any
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: failed to parse JSON config file: %w", err)
		}
	}
	// An empty YAML document decodes to nil.
	if doc == nil {
		doc = map[string]any{}
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	// The document already passed the schema, so re-encoding it as JSON yields
	// exactly the accepted values for both input formats.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config: failed to normalize config: %w", err)
	}
	c := &Config{}
	if err := json.Unmarshal(normalized, c); err != nil {
		return nil, fmt.Errorf("config: failed to decode config: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

func validate(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("config: failed to compile schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
