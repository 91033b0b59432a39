package jsonmutator

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/cybergodev/jsonmutator/internal"
)

// ToYAML renders the document as YAML, keeping object key order
func (d *Document) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(toYAMLValue(d.items))
	if err != nil {
		return nil, newOperationError("to_yaml", err.Error(), ErrUnsupportedType)
	}
	return data, nil
}

// FromYAML decodes a YAML mapping into a document, keeping key order.
// Non-string keys are converted with fmt.Sprint.
func FromYAML(data []byte) (*Document, error) {
	return FromYAMLWithConfig(data, nil)
}

// FromYAMLWithConfig is FromYAML with an explicit configuration
func FromYAMLWithConfig(data []byte, cfg *Config) (*Document, error) {
	cfg = configOrDefault(cfg)
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, newOperationError("from_yaml", err.Error(), ErrNotObject)
	}
	m, _ := fromYAMLValue(ms, cfg.keyFunc()).(*internal.Map)
	return fromMap(m, cfg), nil
}

func toYAMLValue(v any) any {
	switch val := v.(type) {
	case *internal.Map:
		ms := make(yaml.MapSlice, 0, val.Len())
		for k, elem := range val.All() {
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAMLValue(elem)})
		}
		return ms
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = toYAMLValue(elem)
		}
		return out
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return string(val)
	}
	return v
}

func fromYAMLValue(v any, keyFn internal.KeyFunc) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		m := internal.NewMap(len(val))
		for _, item := range val {
			key := fmt.Sprint(item.Key)
			if keyFn != nil {
				key = keyFn(key)
			}
			m.Set(key, fromYAMLValue(item.Value, keyFn))
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = fromYAMLValue(elem, keyFn)
		}
		return out
	}
	return internal.Ingest(v, keyFn)
}
