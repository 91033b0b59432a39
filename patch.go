package jsonmutator

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/cybergodev/jsonmutator/internal"
)

// ApplyPatch applies an RFC 6902 JSON Patch document to d. On failure d is unchanged.
// Patch operations use JSON Pointer paths ("/user/name"), not dot notation.
// Object keys of the result are in sorted order.
func (d *Document) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return newOperationError("apply_patch", "invalid patch: "+err.Error(), ErrPatchFailed)
	}
	current, err := internal.Encode(d.items, internal.EncodeOptions{})
	if err != nil {
		return newOperationError("apply_patch", err.Error(), ErrUnsupportedType)
	}
	out, err := ops.Apply(current)
	if err != nil {
		return newOperationError("apply_patch", err.Error(), ErrPatchFailed)
	}
	return d.replaceFromPatch("apply_patch", out)
}

// ApplyMergePatch applies an RFC 7396 merge patch to d: objects merge,
// null removes a key and anything else replaces. On failure d is unchanged.
func (d *Document) ApplyMergePatch(patch []byte) error {
	current, err := internal.Encode(d.items, internal.EncodeOptions{})
	if err != nil {
		return newOperationError("apply_merge_patch", err.Error(), ErrUnsupportedType)
	}
	out, err := jsonpatch.MergePatch(current, patch)
	if err != nil {
		return newOperationError("apply_merge_patch", err.Error(), ErrPatchFailed)
	}
	return d.replaceFromPatch("apply_merge_patch", out)
}

// CreateMergePatch returns the RFC 7396 merge patch that turns d into target.
// target may be anything Merge accepts.
func (d *Document) CreateMergePatch(target any) ([]byte, error) {
	normalized, ok := d.normalize(target)
	if !ok {
		return nil, newOperationError("create_merge_patch", "target must be an object", ErrNotObject)
	}
	if list, isList := normalized.([]any); isList {
		normalized = internal.MapFromList(list)
	}

	original, err := internal.Encode(d.items, internal.EncodeOptions{})
	if err != nil {
		return nil, newOperationError("create_merge_patch", err.Error(), ErrUnsupportedType)
	}
	modified, err := internal.Encode(normalized, internal.EncodeOptions{})
	if err != nil {
		return nil, newOperationError("create_merge_patch", err.Error(), ErrUnsupportedType)
	}
	patch, err := jsonpatch.CreateMergePatch(original, modified)
	if err != nil {
		return nil, newOperationError("create_merge_patch", err.Error(), ErrPatchFailed)
	}
	return patch, nil
}

func (d *Document) replaceFromPatch(op string, out []byte) error {
	m, err := decodeObject(op, string(out), d.config)
	if err != nil {
		return err
	}
	d.items = m
	return nil
}
