package jsonmutator

import (
	"errors"
	"fmt"
)

// Error definitions. Lenient operations never return these; they surface only
// from the strict entry points (FromJSONStrict, Encode, Validate, patch and query helpers).
var (
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrNotObject       = errors.New("JSON value is not an object")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrInvalidConfig   = errors.New("invalid configuration")

	// Limit-related errors
	ErrDepthLimit = errors.New("depth limit exceeded")
	ErrSizeLimit  = errors.New("size limit exceeded")

	// Integration errors
	ErrPatchFailed = errors.New("patch failed")
	ErrQueryFailed = errors.New("query failed")
)

// MutatorError describes a failed document operation
type MutatorError struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Dot path involved, if any
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *MutatorError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jsonmutator %s failed at path '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("jsonmutator %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *MutatorError) Unwrap() error {
	return e.Err
}

// Is matches another *MutatorError with the same Op and cause, or any error in the chain
func (e *MutatorError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*MutatorError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}
	return errors.Is(e.Err, target)
}

func newError(op, path, message string, err error) *MutatorError {
	return &MutatorError{
		Op:      op,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

func newOperationError(op, message string, err error) *MutatorError {
	return newError(op, "", message, err)
}

func newSizeLimitError(op string, size, maxSize int) *MutatorError {
	return newOperationError(op, fmt.Sprintf("size %d exceeds maximum %d", size, maxSize), ErrSizeLimit)
}

func newDepthLimitError(op string, depth, maxDepth int) *MutatorError {
	return newOperationError(op, fmt.Sprintf("depth %d exceeds maximum %d", depth, maxDepth), ErrDepthLimit)
}

// WrapError wraps err with operation context; nil stays nil
func WrapError(err error, op, message string) error {
	if err == nil {
		return nil
	}
	return newOperationError(op, message, err)
}

// WrapPathError wraps err with operation and path context; nil stays nil
func WrapPathError(err error, op, path, message string) error {
	if err == nil {
		return nil
	}
	return newError(op, path, message, err)
}

// ErrorCode returns the machine-readable code for err, or "" when it wraps none of the package errors
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidJSON):
		return ErrCodeInvalidJSON
	case errors.Is(err, ErrNotObject):
		return ErrCodeNotObject
	case errors.Is(err, ErrDepthLimit):
		return ErrCodeDepthLimit
	case errors.Is(err, ErrSizeLimit):
		return ErrCodeSizeLimit
	case errors.Is(err, ErrInvalidConfig):
		return ErrCodeInvalidConfig
	case errors.Is(err, ErrPatchFailed):
		return ErrCodePatchFailed
	case errors.Is(err, ErrQueryFailed):
		return ErrCodeQueryFailed
	case errors.Is(err, ErrUnsupportedType):
		return ErrCodeUnsupportedType
	}
	return ""
}
