package jsonmutator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cybergodev/jsonmutator/internal"
)

// Config holds the settings shared by documents and the column caster.
// Its YAML form is the published configuration file.
type Config struct {
	JSONOptions     EncodeConfig     `yaml:"json_options"`
	Defaults        Defaults         `yaml:"defaults"`
	Validation      ValidationConfig `yaml:"validation"`
	MergePolicy     MergePolicy      `yaml:"merge_policy"`
	NormalizeKeys   bool             `yaml:"normalize_keys"`   // NFC-normalize keys and path segments
	PreserveNumbers bool             `yaml:"preserve_numbers"` // decode numbers as json.Number

	// Logger receives lenient-fallback diagnostics; nil disables logging
	Logger *slog.Logger `yaml:"-"`
}

// Defaults are the values used when there is nothing better to return
type Defaults struct {
	EmptyValue string `yaml:"empty_value"` // JSON text for an empty or unencodable document
	NullValue  any    `yaml:"null_value"`  // returned by Get for a missing path when no default is given
}

// ValidationConfig declares document limits. They are checked by Validate and
// enforced by strict entry points only when Enforce is set.
type ValidationConfig struct {
	MaxDepth  int  `yaml:"max_depth"`  // container nesting, the document itself counts as 1
	MaxLength int  `yaml:"max_length"` // bytes of compact JSON
	Enforce   bool `yaml:"enforce"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		JSONOptions: *DefaultEncodeConfig(),
		Defaults: Defaults{
			EmptyValue: DefaultEmptyValue,
			NullValue:  nil,
		},
		Validation: ValidationConfig{
			MaxDepth:  DefaultMaxDepth,
			MaxLength: DefaultMaxLength,
			Enforce:   false,
		},
		MergePolicy:     MergeRecursive,
		NormalizeKeys:   false,
		PreserveNumbers: false,
	}
}

// StrictConfig returns the default configuration with limit enforcement switched on
func StrictConfig() *Config {
	cfg := DefaultConfig()
	cfg.Validation.Enforce = true
	return cfg
}

// Clone creates a copy of the configuration; nil clones the default
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	clone.Defaults.NullValue = internal.Export(internal.Ingest(c.Defaults.NullValue, nil))
	return &clone
}

// Validate checks the configuration and fills zero values with defaults
func (c *Config) Validate() error {
	if c == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	switch MergePolicy(strings.ToLower(string(c.MergePolicy))) {
	case "":
		c.MergePolicy = MergeRecursive
	case MergeRecursive, MergeOverwrite:
		c.MergePolicy = MergePolicy(strings.ToLower(string(c.MergePolicy)))
	default:
		return newOperationError("validate_config",
			fmt.Sprintf("unknown merge policy %q", c.MergePolicy), ErrInvalidConfig)
	}

	if c.Validation.MaxDepth < 0 {
		return newOperationError("validate_config", "max_depth cannot be negative", ErrInvalidConfig)
	}
	if c.Validation.MaxLength < 0 {
		return newOperationError("validate_config", "max_length cannot be negative", ErrInvalidConfig)
	}
	if c.Validation.MaxDepth == 0 {
		c.Validation.MaxDepth = DefaultMaxDepth
	}
	if c.Validation.MaxLength == 0 {
		c.Validation.MaxLength = DefaultMaxLength
	}

	if c.Defaults.EmptyValue == "" {
		c.Defaults.EmptyValue = DefaultEmptyValue
	} else if !internal.Valid(c.Defaults.EmptyValue) {
		return newOperationError("validate_config",
			fmt.Sprintf("empty_value %q is not valid JSON", c.Defaults.EmptyValue), ErrInvalidConfig)
	}

	return nil
}

func (c *Config) keyFunc() internal.KeyFunc {
	if c.NormalizeKeys {
		return internal.NormalizeKey
	}
	return nil
}

// configOrDefault returns cfg, or the shared default when cfg is nil
func configOrDefault(cfg *Config) *Config {
	if cfg == nil {
		return defaultConfig
	}
	return cfg
}

var defaultConfig = DefaultConfig()
