package internal

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned by Decode for text that is not valid JSON
var ErrMalformed = errors.New("malformed JSON")

// Valid reports whether text is a single well-formed JSON value
func Valid(text string) bool {
	return gjson.Valid(text)
}

// Decode parses text into the internal representation, keeping object keys
// in document order. Numbers become float64, or json.Number when preserveNumbers is set.
func Decode(text string, preserveNumbers bool) (any, error) {
	if !gjson.Valid(text) {
		return nil, ErrMalformed
	}
	return convertResult(gjson.Parse(text), preserveNumbers), nil
}

// DecodeResult converts a gjson result (for example from a path query) into the internal representation
func DecodeResult(r gjson.Result, preserveNumbers bool) any {
	return convertResult(r, preserveNumbers)
}

func convertResult(r gjson.Result, preserveNumbers bool) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		if preserveNumbers {
			return json.Number(r.Raw)
		}
		return r.Num
	case gjson.String:
		return r.Str
	case gjson.JSON:
		if r.IsArray() {
			list := make([]any, 0)
			r.ForEach(func(_, value gjson.Result) bool {
				list = append(list, convertResult(value, preserveNumbers))
				return true
			})
			return list
		}
		if r.IsObject() {
			m := NewMap(0)
			r.ForEach(func(key, value gjson.Result) bool {
				m.Set(key.Str, convertResult(value, preserveNumbers))
				return true
			})
			return m
		}
	}
	return nil
}
