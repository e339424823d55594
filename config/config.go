// Package config loads the YAML run configuration shared by the CLI
// commands and the HTTP server.
//
//	topology: fattree
//	params: {k: 8, r: 2}
//	output: fabric.json
//	scope: dc1
//	maxNodes: 100000
//	log: {level: debug}
//	server: {addr: ":8080", maxNodes: 20000}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults applied by Load for omitted fields.
const (
	DefaultAddr        = ":8080"
	DefaultLogLevel    = "info"
	DefaultReadTimeout = 5 * time.Second

	// DefaultServerMaxNodes bounds the fabric one HTTP request may build.
	DefaultServerMaxNodes = 100000
)

// Config is the run configuration.
type Config struct {
	// Topology is a registry name; Params are passed untyped to the registry,
	// which reports non-integers as builder.ErrParamType.
	Topology string         `yaml:"topology" validate:"omitempty,lowercase"`
	Params   map[string]any `yaml:"params"`

	// Output is a file path whose extension picks the format; empty means stdout.
	Output string `yaml:"output" validate:"omitempty,endswith=.yaml|endswith=.yml|endswith=.json"`
	// Format applies when writing to stdout.
	Format string `yaml:"format" validate:"omitempty,oneof=yaml yml json"`

	Scope    string `yaml:"scope" validate:"excludes=."`
	MaxNodes int    `yaml:"maxNodes" validate:"gte=0"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// ServerConfig tunes `dctopo serve`.
type ServerConfig struct {
	Addr        string        `yaml:"addr" validate:"omitempty,hostname_port"`
	// MaxNodes of 0 takes DefaultServerMaxNodes.
	MaxNodes    int           `yaml:"maxNodes" validate:"gte=0"`
	ReadTimeout time.Duration `yaml:"readTimeout" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks struct tags and joins every field error into one message.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// ApplyDefaults fills omitted fields.
func (c *Config) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxNodes == 0 {
		c.Server.MaxNodes = DefaultServerMaxNodes
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Format == "" {
		c.Format = "yaml"
	}
}

// Parse decodes YAML from r, rejecting unknown fields, then validates and
// applies defaults.
func Parse(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ApplyDefaults()

	return &c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Parse(bytes.NewReader(data))
}

// formatValidationError turns validator errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "excludes":
		return fmt.Sprintf("%s must not contain %q", field, e.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	case "endswith":
		return fmt.Sprintf("%s must end in .yaml, .yml or .json", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
