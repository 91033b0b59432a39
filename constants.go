package jsonmutator

const (
	// Validation limits, as published in the default configuration file
	DefaultMaxDepth  = 10
	DefaultMaxLength = 65535

	// DefaultEmptyValue is the JSON text stored for an empty or null document
	DefaultEmptyValue = "{}"

	DefaultIndent = "  "
)

// MergePolicy selects how Merge resolves keys present on both sides
type MergePolicy string

const (
	// MergeRecursive accumulates: colliding scalars become a list of both
	// values and colliding lists concatenate.
	MergeRecursive MergePolicy = "recursive"

	// MergeOverwrite merges nested objects and lets the incoming value win every other collision.
	MergeOverwrite MergePolicy = "overwrite"
)

// Error codes for machine-readable error identification (used by the CLI exit status)
const (
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodeNotObject       = "ERR_NOT_OBJECT"
	ErrCodeDepthLimit      = "ERR_DEPTH_LIMIT"
	ErrCodeSizeLimit       = "ERR_SIZE_LIMIT"
	ErrCodeInvalidConfig   = "ERR_INVALID_CONFIG"
	ErrCodePatchFailed     = "ERR_PATCH_FAILED"
	ErrCodeQueryFailed     = "ERR_QUERY_FAILED"
	ErrCodeUnsupportedType = "ERR_UNSUPPORTED_TYPE"
)
