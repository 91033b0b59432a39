package jsonmutator

import (
	"github.com/cybergodev/jsonmutator/internal"
)

// Get returns the value at path, or the first default when the path does not
// resolve. Without a default, a miss returns Config.Defaults.NullValue.
// A stored null resolves and is returned as nil.
//
// Objects are returned as map[string]any and lists as []any; both are copies.
func (d *Document) Get(path string, def ...any) any {
	if v, ok := d.Lookup(path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return d.config.Defaults.NullValue
}

// Lookup returns the value at path and whether the path resolved.
// Unlike Has it reports true for a stored null.
func (d *Document) Lookup(path string) (any, bool) {
	v, ok := internal.Lookup(d.items, d.segments(path))
	if !ok {
		return nil, false
	}
	return internal.Export(v), true
}

// Has reports whether path resolves to a non-nil value.
// A key explicitly set to nil is reported as absent.
func (d *Document) Has(path string) bool {
	v, ok := internal.Lookup(d.items, d.segments(path))
	return ok && v != nil
}

// Set stores value at path, creating intermediate objects as needed.
// An intermediate holding a scalar is replaced by an object. In a list, the
// index one past the end appends; any other key turns the list into an
// object keyed by position.
func (d *Document) Set(path string, value any) *Document {
	internal.Assign(d.items, d.segments(path), d.ingest(value))
	return d
}

// Forget removes the entry at path. A path that does not resolve is ignored.
// Removing a list element shifts the following elements down.
func (d *Document) Forget(path string) *Document {
	internal.Remove(d.items, d.segments(path))
	return d
}

// Sub returns a copy of the object at path as a document, keeping key order.
// A path that does not resolve to an object yields an empty document.
func (d *Document) Sub(path string) *Document {
	v, ok := internal.Lookup(d.items, d.segments(path))
	if !ok {
		return newDocument(d.config)
	}
	switch c := v.(type) {
	case *internal.Map:
		return fromMap(c.Clone(), d.config)
	case []any:
		return fromMap(internal.MapFromList(internal.CloneValue(c).([]any)), d.config)
	}
	return newDocument(d.config)
}

// GetJSON returns the JSON text of the value at path, keeping object key order
func (d *Document) GetJSON(path string, opts ...*EncodeConfig) (string, bool) {
	v, ok := internal.Lookup(d.items, d.segments(path))
	if !ok {
		return "", false
	}
	data, err := internal.Encode(v, d.encodeConfig(opts).options())
	if err != nil {
		d.logWarn("get_json", path, err)
		return "", false
	}
	return string(data), true
}

// OffsetGet returns the top-level value under key, or nil. The key is not split on dots.
func (d *Document) OffsetGet(key string) any {
	v, _ := d.items.Get(d.key(key))
	return internal.Export(v)
}

// OffsetSet stores value under the top-level key. The key is not split on dots.
func (d *Document) OffsetSet(key string, value any) *Document {
	d.items.Set(d.key(key), d.ingest(value))
	return d
}

// OffsetExists reports whether the top-level key holds a non-nil value
func (d *Document) OffsetExists(key string) bool {
	v, ok := d.items.Get(d.key(key))
	return ok && v != nil
}

// OffsetUnset removes the top-level key
func (d *Document) OffsetUnset(key string) *Document {
	d.items.Delete(d.key(key))
	return d
}

// Push appends value under the next free integer key and returns that key
func (d *Document) Push(value any) string {
	return d.items.Push(d.ingest(value))
}

func (d *Document) segments(path string) []string {
	return internal.SplitPath(path, d.config.NormalizeKeys)
}

func (d *Document) key(key string) string {
	if d.config.NormalizeKeys {
		return internal.NormalizeKey(key)
	}
	return key
}
