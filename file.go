package jsonmutator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxReadSize bounds how much LoadFromReader consumes
const MaxReadSize = 64 * 1024 * 1024

// LoadFile reads a JSON object from filePath. Unlike FromJSON it reports
// read and decode failures.
func LoadFile(filePath string, cfg *Config) (*Document, error) {
	if err := validateFilePath(filePath); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, newError("load_file", filePath, "failed to read file", err)
	}
	return FromJSONStrictWithConfig(string(data), cfg)
}

// LoadFromReader reads a JSON object from r, consuming at most MaxReadSize bytes
func LoadFromReader(r io.Reader, cfg *Config) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxReadSize))
	if err != nil {
		return nil, newOperationError("load_from_reader", "failed to read from reader", err)
	}
	return FromJSONStrictWithConfig(string(data), cfg)
}

// SaveFile writes the document to filePath, creating parent directories as needed
func (d *Document) SaveFile(filePath string, opts ...*EncodeConfig) error {
	if err := validateFilePath(filePath); err != nil {
		return err
	}
	data, err := d.Encode(d.encodeConfig(opts))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newError("save_file", filePath, "failed to create directory", err)
		}
	}
	if err := os.WriteFile(filePath, append(data, '\n'), 0o644); err != nil {
		return newError("save_file", filePath, "failed to write file", err)
	}
	return nil
}

func validateFilePath(filePath string) error {
	if filePath == "" {
		return newOperationError("validate_file_path", "file path cannot be empty", ErrInvalidConfig)
	}
	if strings.Contains(filePath, "\x00") {
		return newOperationError("validate_file_path", "null byte in path", ErrInvalidConfig)
	}
	if clean := filepath.Clean(filePath); len(clean) > maxFilePathLength {
		return newOperationError("validate_file_path",
			fmt.Sprintf("path too long: %d > %d", len(clean), maxFilePathLength), ErrInvalidConfig)
	}
	return nil
}

const maxFilePathLength = 4096
