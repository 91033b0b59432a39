package jsonmutator

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// LoadConfig reads a YAML configuration file. Keys missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if err := validateFilePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("load_config", path, "failed to read config file", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, WrapPathError(err, "load_config", path, "failed to parse config file")
	}
	return cfg, nil
}

// ParseConfig decodes YAML configuration text on top of DefaultConfig and validates it
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, newOperationError("parse_config", err.Error(), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg as YAML; nil writes the default configuration
func WriteConfig(w io.Writer, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return newOperationError("write_config", fmt.Sprintf("failed to encode config: %v", err), err)
	}
	return enc.Close()
}
