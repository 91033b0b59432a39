package jsonmutator

import (
	"iter"
	"strconv"

	"github.com/cybergodev/jsonmutator/internal"
)

// Collection is a keyed, ordered group of values, the shape a Document is
// built from or exported to as a whole. Lists are keyed by position.
type Collection struct {
	items *internal.Map
}

// NewCollection creates a list collection keyed "0", "1", ...
func NewCollection(values ...any) *Collection {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = internal.Ingest(v, nil)
	}
	return &Collection{items: internal.MapFromList(list)}
}

// CollectionFromMap creates a collection from a copy of m, in sorted key order
func CollectionFromMap(m map[string]any) *Collection {
	if m == nil {
		return &Collection{items: internal.NewMap(0)}
	}
	return &Collection{items: internal.Ingest(m, nil).(*internal.Map)}
}

// Count returns the number of entries
func (c *Collection) Count() int {
	return c.items.Len()
}

// IsEmpty reports whether the collection has no entries
func (c *Collection) IsEmpty() bool {
	return c.items.Len() == 0
}

// Keys returns the keys in order
func (c *Collection) Keys() []string {
	return c.items.Keys()
}

// Values returns copies of the values in order
func (c *Collection) Values() []any {
	out := make([]any, 0, c.items.Len())
	for _, v := range c.items.All() {
		out = append(out, internal.Export(v))
	}
	return out
}

// Get returns a copy of the value under key
func (c *Collection) Get(key string) (any, bool) {
	v, ok := c.items.Get(key)
	return internal.Export(v), ok
}

// Put stores value under key
func (c *Collection) Put(key string, value any) *Collection {
	c.items.Set(key, internal.Ingest(value, nil))
	return c
}

// Push appends value under the next free integer key
func (c *Collection) Push(value any) *Collection {
	c.items.Push(internal.Ingest(value, nil))
	return c
}

// Forget removes key
func (c *Collection) Forget(key string) *Collection {
	c.items.Delete(key)
	return c
}

// All iterates the entries in order
func (c *Collection) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, v := range c.items.All() {
			if !yield(k, internal.Export(v)) {
				return
			}
		}
	}
}

// Filter returns a new collection with the entries for which keep returns true
func (c *Collection) Filter(keep func(key string, value any) bool) *Collection {
	out := internal.NewMap(0)
	for k, v := range c.items.All() {
		if keep(k, internal.Export(v)) {
			out.Set(k, internal.CloneValue(v))
		}
	}
	return &Collection{items: out}
}

// Map returns a new collection with every value replaced by fn's result
func (c *Collection) Map(fn func(key string, value any) any) *Collection {
	out := internal.NewMap(c.items.Len())
	for k, v := range c.items.All() {
		out.Set(k, internal.Ingest(fn(k, internal.Export(v)), nil))
	}
	return &Collection{items: out}
}

// IsList reports whether the keys are exactly "0".."n-1" in order
func (c *Collection) IsList() bool {
	for i, k := range c.items.Keys() {
		if k != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// ToMap returns a copy of the entries as a plain map
func (c *Collection) ToMap() map[string]any {
	return internal.ExportMap(c.items)
}

// ToDocument returns a document holding a copy of the entries
func (c *Collection) ToDocument() *Document {
	return FromCollection(c)
}
