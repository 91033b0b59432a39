// Package jsonmutator provides Document, a mutable wrapper around a decoded
// JSON object addressed with dot-notation paths, plus the helpers needed to
// store it in a JSON database column.
//
// The package uses an internal package for implementation details:
//
//   - internal: ordered map, path splitting, navigation, merge algorithms,
//     and the order-preserving JSON decoder and encoder
//
// # Basic Usage
//
//	doc := jsonmutator.New(nil)
//	doc.Set("user.profile.age", 30).Set("user.profile.location", "NY")
//	age := doc.Get("user.profile.age")          // 30
//	doc.Has("user.profile.email")                // false
//	doc.Forget("user.profile.location")
//	text := doc.ToJSON()                          // {"user":{"profile":{"age":30}}}
//
// Paths are split on '.'. Each segment names a key of an object or, for a
// list, a non-negative index. Set creates missing intermediate objects.
//
// # Lenient by Default
//
// Nothing in the document API fails on malformed input. FromJSON returns an
// empty document for invalid JSON or a non-object value, Get returns the
// default for a path that does not resolve, and Forget on a missing path
// does nothing. Strict variants (FromJSONStrict, Encode, Validate) are
// available when errors are wanted.
//
// Has reports whether a path holds a non-nil value, so a stored null is
// indistinguishable from a missing key. Lookup tells them apart.
//
// # Merging
//
// Merge follows MergeRecursive by default: nested objects merge, lists
// concatenate and colliding scalar values are collected into a list
// ({"a":1} merged with {"a":2} gives {"a":[1,2]}). Set Config.MergePolicy to
// MergeOverwrite, or call MergeWith, to let incoming values win instead.
//
// # Column Storage
//
// Document implements json.Marshaler, json.Unmarshaler, sql.Scanner and
// driver.Valuer. The cast subpackage implements the get/set/serialize hooks
// an ORM attribute cast needs.
package jsonmutator
