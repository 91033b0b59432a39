package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/cybergodev/jsonmutator"
)

// fileArg returns args[i], or "-" (stdin) when it is absent
func fileArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "-"
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(io.LimitReader(os.Stdin, jsonmutator.MaxReadSize))
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return data, nil
}

func (cfg *MainConfig) readDoc(file string) (*jsonmutator.Document, error) {
	data, err := readInput(file)
	if err != nil {
		return nil, err
	}
	if cfg.Strict {
		d, err := jsonmutator.FromJSONStrictWithConfig(string(data), cfg.docConfig)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		return d, nil
	}
	return jsonmutator.FromJSONWithConfig(string(data), cfg.docConfig), nil
}

// readJSONArg accepts either inline JSON text or the name of a file holding it
func (cfg *MainConfig) readJSONArg(arg string) (*jsonmutator.Document, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		d, err := jsonmutator.FromJSONStrictWithConfig(arg, cfg.docConfig)
		if err != nil {
			return nil, fmt.Errorf("error decoding argument: %w", err)
		}
		return d, nil
	}
	data, err := readInput(arg)
	if err != nil {
		return nil, err
	}
	d, err := jsonmutator.FromJSONStrictWithConfig(string(data), cfg.docConfig)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return d, nil
}

func (cfg *MainConfig) writeJSON(w io.Writer, data []byte) error {
	if cfg.useColor(w) {
		data = pretty.Color(data, nil)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (cfg *MainConfig) writeDoc(w io.Writer, d *jsonmutator.Document) error {
	data, err := d.Encode(cfg.encodeConfig())
	if err != nil {
		return err
	}
	return cfg.writeJSON(w, data)
}

// writeValue prints any decoded value as JSON with the configured escaping
func (cfg *MainConfig) writeValue(w io.Writer, v any) error {
	holder := jsonmutator.NewWithConfig(nil, cfg.docConfig)
	key := holder.Push(v)
	text, ok := holder.GetJSON(key, cfg.encodeConfig())
	if !ok {
		return fmt.Errorf("%T cannot be encoded as JSON", v)
	}
	return cfg.writeJSON(w, []byte(text))
}
