package jsonmutator

import (
	"database/sql/driver"
	"fmt"

	"github.com/cybergodev/jsonmutator/internal"
)

// Scan implements sql.Scanner for JSON columns. NULL gives an empty
// document and so does text that is not a JSON object, matching the
// lenient column decoding of the cast package. Source types other than
// string and []byte are an error.
func (d *Document) Scan(src any) error {
	d.ensure()
	var text string
	switch v := src.(type) {
	case nil:
		d.items = internal.NewMap(0)
		return nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return newOperationError("scan", fmt.Sprintf("cannot scan %T into a document", src), ErrUnsupportedType)
	}

	m, err := decodeObject("scan", text, d.config)
	if err != nil {
		logDebug(d.config, "scan", "", "column value decoded as empty document", err)
		m = internal.NewMap(0)
	}
	d.items = m
	return nil
}

// Value implements driver.Valuer, storing the compact JSON text. A nil
// document stores the empty object. With Validation.Enforce set, limits are checked first.
func (d *Document) Value() (driver.Value, error) {
	if d == nil || d.items == nil {
		return DefaultEmptyValue, nil
	}
	if d.config.Validation.Enforce {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	cfg := d.config.JSONOptions
	cfg.Pretty = false
	data, err := d.Encode(&cfg)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
