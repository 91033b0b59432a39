package internal

import (
	"iter"
	"slices"
	"strconv"
)

// Map is a string-keyed map that remembers insertion order.
// Values are JSON-shaped: nil, bool, numbers, string, []any or *Map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty Map with room for size entries
func NewMap(size int) *Map {
	return &Map{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

// Len returns the number of entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Get returns the value stored under key
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present, even when it holds nil
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. New keys go to the end; existing keys keep their position.
func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key and reports whether it was present
func (m *Map) Delete(key string) bool {
	if _, exists := m.values[key]; !exists {
		return false
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Clear removes every entry
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	clear(m.values)
}

// All iterates entries in insertion order. The sequence can be ranged over repeatedly.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// NextIndex returns the next free integer key: one past the largest
// non-negative canonical integer key, or 0 when there is none.
func (m *Map) NextIndex() int {
	next := 0
	for _, k := range m.Keys() {
		if n, ok := canonicalInt(k); ok && n >= next {
			next = n + 1
		}
	}
	return next
}

// Push stores value under the next free integer key and returns that key
func (m *Map) Push(value any) string {
	key := strconv.Itoa(m.NextIndex())
	m.Set(key, value)
	return key
}

// Clone returns a deep copy
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap(0)
	}
	out := NewMap(len(m.keys))
	for _, k := range m.keys {
		out.Set(k, CloneValue(m.values[k]))
	}
	return out
}

// MapFromList converts a list into a Map keyed "0".."n-1"
func MapFromList(list []any) *Map {
	out := NewMap(len(list))
	for i, v := range list {
		out.Set(strconv.Itoa(i), v)
	}
	return out
}

func canonicalInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}
