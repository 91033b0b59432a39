package jsonmutator

import (
	"github.com/cybergodev/jsonmutator/internal"
)

// FromJSON decodes text as a JSON object. Invalid JSON, or any value that is
// not an object (arrays included), yields an empty document.
func FromJSON(text string) *Document {
	return FromJSONWithConfig(text, nil)
}

// FromJSONWithConfig is FromJSON with an explicit configuration
func FromJSONWithConfig(text string, cfg *Config) *Document {
	cfg = configOrDefault(cfg)
	m, err := decodeObject("from_json", text, cfg)
	if err != nil {
		logDebug(cfg, "from_json", "", "falling back to empty document", err)
		return newDocument(cfg)
	}
	return fromMap(m, cfg)
}

// FromJSONStrict decodes text as a JSON object and reports why it could not:
// ErrInvalidJSON for malformed text, ErrNotObject for any other JSON value.
// With Validation.Enforce set in the default configuration, limits are checked too.
func FromJSONStrict(text string) (*Document, error) {
	return FromJSONStrictWithConfig(text, nil)
}

// FromJSONStrictWithConfig is FromJSONStrict with an explicit configuration
func FromJSONStrictWithConfig(text string, cfg *Config) (*Document, error) {
	cfg = configOrDefault(cfg)
	if cfg.Validation.Enforce && cfg.Validation.MaxLength > 0 && len(text) > cfg.Validation.MaxLength {
		return nil, newSizeLimitError("from_json_strict", len(text), cfg.Validation.MaxLength)
	}
	m, err := decodeObject("from_json_strict", text, cfg)
	if err != nil {
		return nil, err
	}
	d := fromMap(m, cfg)
	if cfg.Validation.Enforce {
		if err := d.validateDepth("from_json_strict"); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Valid reports whether text is well-formed JSON of any kind
func Valid(text string) bool {
	return internal.Valid(text)
}

func decodeObject(op, text string, cfg *Config) (*internal.Map, error) {
	decoded, err := internal.Decode(text, cfg.PreserveNumbers)
	if err != nil {
		return nil, newOperationError(op, "malformed JSON text", ErrInvalidJSON)
	}
	m, ok := decoded.(*internal.Map)
	if !ok {
		return nil, newOperationError(op, "top-level value must be an object", ErrNotObject)
	}
	if keyFn := cfg.keyFunc(); keyFn != nil {
		m = internal.Ingest(m, keyFn).(*internal.Map)
	}
	return m, nil
}
