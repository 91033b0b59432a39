package jsonmutator

import (
	"iter"
	"reflect"
	"slices"

	"github.com/cybergodev/jsonmutator/internal"
)

// Document is a mutable JSON object addressed with dot-notation paths.
//
// Object keys keep insertion order; a Go map handed to New or Set is taken in
// sorted key order. Values are copied on the way in and on the way out, so a
// Document never shares containers with its caller.
//
// A Document is meant for a single owner and is not safe for concurrent mutation.
type Document struct {
	items  *internal.Map
	config *Config
}

// New creates a document holding a copy of items
func New(items map[string]any) *Document {
	return NewWithConfig(items, nil)
}

// NewWithConfig creates a document holding a copy of items, using cfg for
// defaults, encoding and merge policy. A nil cfg selects DefaultConfig.
func NewWithConfig(items map[string]any, cfg *Config) *Document {
	d := newDocument(cfg)
	if items != nil {
		d.items = internal.Ingest(items, d.config.keyFunc()).(*internal.Map)
	}
	return d
}

// FromMap is an alias of New
func FromMap(items map[string]any) *Document {
	return New(items)
}

// FromCollection creates a document from the entries of c
func FromCollection(c *Collection) *Document {
	d := newDocument(nil)
	if c != nil {
		d.items = c.items.Clone()
	}
	return d
}

func newDocument(cfg *Config) *Document {
	return &Document{
		items:  internal.NewMap(0),
		config: configOrDefault(cfg),
	}
}

func fromMap(m *internal.Map, cfg *Config) *Document {
	d := newDocument(cfg)
	if m != nil {
		d.items = m
	}
	return d
}

// Config returns a copy of the document's configuration
func (d *Document) Config() *Config {
	return d.config.Clone()
}

// WithConfig switches the configuration used by later operations; nil selects the default
func (d *Document) WithConfig(cfg *Config) *Document {
	d.config = configOrDefault(cfg)
	return d
}

// Count returns the number of top-level keys
func (d *Document) Count() int {
	return d.items.Len()
}

// IsEmpty reports whether the document has no top-level keys
func (d *Document) IsEmpty() bool {
	return d.items.Len() == 0
}

// IsNotEmpty reports whether the document has at least one top-level key
func (d *Document) IsNotEmpty() bool {
	return !d.IsEmpty()
}

// Keys returns the top-level keys in insertion order
func (d *Document) Keys() []string {
	return d.items.Keys()
}

// All iterates the top-level entries in insertion order. Values are copies.
// The sequence can be ranged over any number of times.
func (d *Document) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range d.items.Keys() {
			v, ok := d.items.Get(k)
			if !ok {
				continue
			}
			if !yield(k, internal.Export(v)) {
				return
			}
		}
	}
}

// ToMap returns a copy of the document as plain Go values.
// Objects become map[string]any and lists []any; mutating the result does not affect d.
func (d *Document) ToMap() map[string]any {
	return internal.ExportMap(d.items)
}

// ToCollection returns a collection holding a copy of the top-level entries
func (d *Document) ToCollection() *Collection {
	return &Collection{items: d.items.Clone()}
}

// Clone returns a deep copy sharing the configuration
func (d *Document) Clone() *Document {
	return fromMap(d.items.Clone(), d.config)
}

// Clear removes every entry
func (d *Document) Clear() *Document {
	d.items.Clear()
	return d
}

// Equal reports whether other holds the same data. Key order is ignored.
// other may be anything Merge accepts.
func (d *Document) Equal(other any) bool {
	normalized, ok := d.normalize(other)
	if !ok {
		return false
	}
	return equalValues(d.items, normalized)
}

func equalValues(a, b any) bool {
	switch av := a.(type) {
	case *internal.Map:
		bv, ok := b.(*internal.Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for k, v := range av.All() {
			other, exists := bv.Get(k)
			if !exists || !equalValues(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return false
		}
		return slices.EqualFunc(av, bv, equalValues)
	}
	an, aNum := toFloat(a)
	bn, bNum := toFloat(b)
	if aNum && bNum {
		return an == bn
	}
	return reflect.DeepEqual(a, b)
}
