package jsonmutator

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/cybergodev/jsonmutator/internal"
)

// ingest copies an incoming value into the internal representation
func (d *Document) ingest(value any) any {
	switch v := value.(type) {
	case *Document:
		if v == nil {
			return nil
		}
		return d.rekey(v.items.Clone())
	case Document:
		return d.rekey(v.items.Clone())
	case *Collection:
		if v == nil {
			return nil
		}
		return d.rekey(v.items.Clone())
	}
	return internal.Ingest(value, d.config.keyFunc())
}

func (d *Document) rekey(m *internal.Map) *internal.Map {
	if keyFn := d.config.keyFunc(); keyFn != nil {
		return internal.Ingest(m, keyFn).(*internal.Map)
	}
	return m
}

// normalize turns the inputs accepted by Merge and Replace into their internal
// form. The boolean is true for mapping-like input (objects, documents,
// collections, lists); anything else is a bare value.
func (d *Document) normalize(data any) (any, bool) {
	v := d.ingest(data)
	switch v.(type) {
	case *internal.Map, []any:
		return v, true
	}
	return v, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
