package jsonmutator

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/itchyny/gojq"
	"github.com/tidwall/gjson"

	"github.com/cybergodev/jsonmutator/internal"
)

// Query evaluates a gjson path (wildcards, "#" for array length, "#(...)"
// filters and modifiers such as "@reverse") against the document.
// The boolean reports whether anything matched.
func (d *Document) Query(path string) (any, bool) {
	text, err := internal.Encode(d.items, internal.EncodeOptions{})
	if err != nil {
		d.logWarn("query", path, err)
		return nil, false
	}
	result := gjson.GetBytes(text, path)
	if !result.Exists() {
		return nil, false
	}
	return internal.Export(internal.DecodeResult(result, d.config.PreserveNumbers)), true
}

// JQ runs a jq program against the document and returns every value it emits
func (d *Document) JQ(query string) ([]any, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, newOperationError("jq", fmt.Sprintf("parse %q: %v", query, err), ErrQueryFailed)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, newOperationError("jq", fmt.Sprintf("compile %q: %v", query, err), ErrQueryFailed)
	}

	input, err := d.plainValue()
	if err != nil {
		return nil, err
	}

	results := make([]any, 0, 1)
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			if haltErr, isHalt := err.(*gojq.HaltError); isHalt && haltErr.Value() == nil {
				break
			}
			return nil, newOperationError("jq", err.Error(), ErrQueryFailed)
		}
		results = append(results, v)
	}
	return results, nil
}

// Eval evaluates an expr-lang expression with the top-level keys as
// variables. Two helpers address nested values by dot path:
// at(path) returns the value or nil and exists(path) behaves like Has.
//
//	doc.Eval(`user.age >= 18 && exists("user.email")`)
func (d *Document) Eval(expression string) (any, error) {
	env := d.ToMap()
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("at", func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("at: path must be a string, got %T", params[0])
			}
			v, _ := d.Lookup(path)
			return v, nil
		}, new(func(string) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("exists: path must be a string, got %T", params[0])
			}
			return d.Has(path), nil
		}, new(func(string) bool)),
	)
	if err != nil {
		return nil, newOperationError("eval", err.Error(), ErrQueryFailed)
	}

	out, err := vm.Run(program, env)
	if err != nil {
		return nil, newOperationError("eval", err.Error(), ErrQueryFailed)
	}
	return out, nil
}

// plainValue returns the document as encoding/json would decode it, the
// value shapes gojq accepts
func (d *Document) plainValue() (any, error) {
	text, err := internal.Encode(d.items, internal.EncodeOptions{})
	if err != nil {
		return nil, newOperationError("jq", err.Error(), ErrUnsupportedType)
	}
	var v any
	if err := json.Unmarshal(text, &v); err != nil {
		return nil, newOperationError("jq", err.Error(), ErrInvalidJSON)
	}
	return v, nil
}
