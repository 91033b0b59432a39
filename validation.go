package jsonmutator

import (
	"github.com/cybergodev/jsonmutator/internal"
)

// Validate checks the document against Config.Validation: nesting depth
// (the document itself is depth 1) and the length of its compact JSON.
// It checks regardless of Validation.Enforce; Enforce only decides whether
// strict entry points call it.
func (d *Document) Validate() error {
	if err := d.validateDepth("validate"); err != nil {
		return err
	}
	return d.validateLength("validate")
}

// Depth returns the container nesting depth; an empty document has depth 1
func (d *Document) Depth() int {
	return internal.Depth(d.items)
}

func (d *Document) validateDepth(op string) error {
	limit := d.config.Validation.MaxDepth
	if limit <= 0 {
		return nil
	}
	if depth := d.Depth(); depth > limit {
		return newDepthLimitError(op, depth, limit)
	}
	return nil
}

func (d *Document) validateLength(op string) error {
	limit := d.config.Validation.MaxLength
	if limit <= 0 {
		return nil
	}
	data, err := internal.Encode(d.items, internal.EncodeOptions{})
	if err != nil {
		return newOperationError(op, err.Error(), ErrUnsupportedType)
	}
	if len(data) > limit {
		return newSizeLimitError(op, len(data), limit)
	}
	return nil
}
