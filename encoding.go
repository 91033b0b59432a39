package jsonmutator

import (
	"github.com/cybergodev/jsonmutator/internal"
)

// Encode serializes the document as a JSON object. A nil cfg uses Config.JSONOptions.
// It fails only for values JSON cannot represent, such as NaN or channels.
func (d *Document) Encode(cfg *EncodeConfig) ([]byte, error) {
	if cfg == nil {
		cfg = &d.config.JSONOptions
	}
	data, err := internal.Encode(d.items, cfg.options())
	if err != nil {
		return nil, newOperationError("encode", err.Error(), ErrUnsupportedType)
	}
	return data, nil
}

// ToJSON serializes the document, using the first option when given and
// Config.JSONOptions otherwise. A document that cannot be encoded yields
// Config.Defaults.EmptyValue.
func (d *Document) ToJSON(opts ...*EncodeConfig) string {
	data, err := d.Encode(d.encodeConfig(opts))
	if err != nil {
		d.logWarn("to_json", "", err)
		return d.config.Defaults.EmptyValue
	}
	return string(data)
}

// String returns the compact JSON text of the document
func (d *Document) String() string {
	return d.ToJSON()
}

// MarshalJSON implements json.Marshaler
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil || d.items == nil {
		return []byte(DefaultEmptyValue), nil
	}
	cfg := d.config.JSONOptions
	cfg.Pretty = false
	return d.Encode(&cfg)
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON object
// or null; null leaves the document empty.
func (d *Document) UnmarshalJSON(data []byte) error {
	d.ensure()
	text := string(data)
	if text == "null" {
		d.items = internal.NewMap(0)
		return nil
	}
	m, err := decodeObject("unmarshal_json", text, d.config)
	if err != nil {
		return err
	}
	d.items = m
	return nil
}

func (d *Document) encodeConfig(opts []*EncodeConfig) *EncodeConfig {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return &d.config.JSONOptions
}

// ensure makes a zero Document usable, for json.Unmarshal and sql.Scan targets
func (d *Document) ensure() {
	if d.config == nil {
		d.config = defaultConfig
	}
	if d.items == nil {
		d.items = internal.NewMap(0)
	}
}
