package jsonmutator

import (
	"github.com/cybergodev/jsonmutator/internal"
)

// Merge combines data into the document using Config.MergePolicy.
//
// data may be a map, a *Document, a *Collection, a list or any Go value that
// encodes as a JSON object. List elements and entries with integer keys are
// appended under the next free integer keys. Any other value is appended as a
// single element.
func (d *Document) Merge(data any) *Document {
	return d.MergeWith(data, d.config.MergePolicy)
}

// MergeWith merges data like Merge but with an explicit policy
func (d *Document) MergeWith(data any, policy MergePolicy) *Document {
	normalized, ok := d.normalize(data)
	if !ok {
		d.items.Push(normalized)
		return d
	}

	switch policy {
	case MergeOverwrite:
		d.items = internal.MergeOverwrite(d.items, normalized)
	default:
		d.items = internal.MergeRecursive(d.items, normalized)
	}
	return d
}

// Replace discards the current entries and takes data instead. A list is keyed
// by position and a bare value becomes the single entry "0".
func (d *Document) Replace(data any) *Document {
	normalized, ok := d.normalize(data)
	if !ok {
		d.items = internal.NewMap(1)
		d.items.Push(normalized)
		return d
	}

	switch v := normalized.(type) {
	case *internal.Map:
		d.items = v
	case []any:
		d.items = internal.MapFromList(v)
	}
	return d
}
