package internal

import (
	"encoding/json"
	"reflect"
	"sort"
)

// Mappable is implemented by keyed collections that can present themselves as a plain map
type Mappable interface {
	ToMap() map[string]any
}

// KeyFunc rewrites object keys during ingest; nil leaves them untouched
type KeyFunc func(string) string

// IsContainer reports whether v can be descended into by a path segment
func IsContainer(v any) bool {
	switch v.(type) {
	case *Map, []any:
		return true
	}
	return false
}

// Ingest converts an arbitrary Go value into the internal representation:
// maps with string keys become *Map (sorted keys, since Go maps are unordered),
// slices and arrays become []any, Mappable values are expanded and structs
// take their encoding/json shape.
// Containers are always copied, so the result never aliases the input.
func Ingest(v any, keyFn KeyFunc) any {
	switch val := v.(type) {
	case nil, bool, string, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return val
	case *Map:
		return ingestMap(val, keyFn)
	case map[string]any:
		out := NewMap(len(val))
		for _, k := range sortedKeys(val) {
			out.Set(applyKey(k, keyFn), Ingest(val[k], keyFn))
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Ingest(elem, keyFn)
		}
		return out
	case json.RawMessage:
		if decoded, err := Decode(string(val), false); err == nil {
			return Ingest(decoded, keyFn)
		}
		return string(val)
	case []byte:
		return val
	case Mappable:
		return Ingest(val.ToMap(), keyFn)
	}
	return ingestReflect(v, keyFn)
}

func ingestMap(m *Map, keyFn KeyFunc) *Map {
	out := NewMap(m.Len())
	for k, v := range m.All() {
		out.Set(applyKey(k, keyFn), Ingest(v, keyFn))
	}
	return out
}

func ingestReflect(v any, keyFn KeyFunc) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		out := NewMap(len(keys))
		for _, k := range keys {
			elem := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			out.Set(applyKey(k, keyFn), Ingest(elem.Interface(), keyFn))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Ingest(rv.Index(i).Interface(), keyFn)
		}
		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		switch rv.Elem().Kind() {
		case reflect.Map, reflect.Slice:
			return Ingest(rv.Elem().Interface(), keyFn)
		case reflect.Struct:
			return ingestJSON(v, keyFn)
		}
	case reflect.Struct:
		return ingestJSON(v, keyFn)
	}
	return v
}

// ingestJSON converts a struct through its encoding/json form; values that
// cannot be marshaled are kept as they are.
func ingestJSON(v any, keyFn KeyFunc) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	decoded, err := Decode(string(data), false)
	if err != nil {
		return v
	}
	return Ingest(decoded, keyFn)
}

// Export converts the internal representation back to plain Go values:
// *Map becomes map[string]any and lists are copied element by element.
func Export(v any) any {
	switch val := v.(type) {
	case *Map:
		return ExportMap(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Export(elem)
		}
		return out
	}
	return v
}

// ExportMap converts m into a fresh map[string]any
func ExportMap(m *Map) map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		out[k] = Export(v)
	}
	return out
}

// CloneValue deep-copies containers and returns scalars unchanged
func CloneValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = CloneValue(elem)
		}
		return out
	}
	return v
}

// Depth returns the container nesting depth of v; scalars are 0 and an empty container is 1
func Depth(v any) int {
	deepest := 0
	switch val := v.(type) {
	case *Map:
		for _, elem := range val.All() {
			deepest = max(deepest, Depth(elem))
		}
	case []any:
		for _, elem := range val {
			deepest = max(deepest, Depth(elem))
		}
	default:
		return 0
	}
	return deepest + 1
}

func applyKey(k string, keyFn KeyFunc) string {
	if keyFn == nil {
		return k
	}
	return keyFn(k)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
