package cast

import "github.com/cybergodev/jsonmutator"

// Decode converts a raw column value with the default configuration
func Decode(raw any) *jsonmutator.Document {
	return defaultCaster.Get(raw)
}

// Encode converts a value to column text with the default configuration
func Encode(value any) string {
	return defaultCaster.Encode(value)
}

// Serialize returns the plain map of a *Document and any other value unchanged
func Serialize(value any) any {
	return defaultCaster.Serialize(value)
}

// PatchColumn sets path inside stored column text with the default configuration
func PatchColumn(raw, path string, value any) (string, error) {
	return defaultCaster.PatchColumn(raw, path, value)
}
