// Package cast converts between stored JSON column values and documents.
//
// A Caster provides the three hooks an ORM attribute cast needs: Get turns
// the raw column value into a *jsonmutator.Document, Set turns whatever the
// application assigned back into column text, and Serialize prepares the
// attribute for array or JSON output of the model.
package cast

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cybergodev/jsonmutator"
)

// Caster converts column values using one configuration
type Caster struct {
	config *jsonmutator.Config
}

// New creates a caster; a nil cfg uses jsonmutator.DefaultConfig
func New(cfg *jsonmutator.Config) *Caster {
	if cfg == nil {
		cfg = jsonmutator.DefaultConfig()
	}
	return &Caster{config: cfg}
}

var defaultCaster = New(nil)

// Get decodes a raw column value. It never fails:
//   - nil gives an empty document
//   - a string or []byte holding a JSON object gives that object
//   - any other text, valid JSON or not, gives an empty document
//   - a map or *Document is copied into a new document
//   - anything else gives an empty document
func (c *Caster) Get(raw any) *jsonmutator.Document {
	switch v := raw.(type) {
	case nil:
		return c.empty()
	case string:
		return jsonmutator.FromJSONWithConfig(v, c.config)
	case []byte:
		return jsonmutator.FromJSONWithConfig(string(v), c.config)
	case json.RawMessage:
		return jsonmutator.FromJSONWithConfig(string(v), c.config)
	case map[string]any:
		return jsonmutator.NewWithConfig(v, c.config)
	case *jsonmutator.Document:
		if v == nil {
			return c.empty()
		}
		return v.Clone().WithConfig(c.config)
	}
	c.log("get", raw)
	return c.empty()
}

// Set prepares a value for storage:
//   - a *Document is encoded
//   - nil is stored as Defaults.EmptyValue
//   - a map or *Collection is encoded as a document and a []any as a JSON array
//   - a string that is valid JSON is stored unchanged, whatever its kind
//   - anything else is wrapped in a one-element array, so 123 becomes [123];
//     the wrapped value always escapes slashes and non-ASCII text, whatever
//     Config.JSONOptions says
//
// The only error is a limit violation when Validation.Enforce is set, or a
// value that cannot be represented as JSON.
func (c *Caster) Set(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return c.config.Defaults.EmptyValue, nil
	case *jsonmutator.Document:
		if v == nil {
			return c.config.Defaults.EmptyValue, nil
		}
		return c.encode(v)
	case map[string]any:
		return c.encode(jsonmutator.NewWithConfig(v, c.config))
	case *jsonmutator.Collection:
		return c.encode(jsonmutator.FromCollection(v).WithConfig(c.config))
	case []any:
		return c.encodeValue(v, &c.config.JSONOptions)
	case string:
		if gjson.Valid(v) {
			return v, nil
		}
	case json.RawMessage:
		if gjson.Valid(string(v)) {
			return string(v), nil
		}
	}
	return c.wrap(value)
}

// Encode is Set without errors: a failure falls back to Defaults.EmptyValue
func (c *Caster) Encode(value any) string {
	out, err := c.Set(value)
	if err != nil {
		if c.config.Logger != nil {
			c.config.Logger.Warn("column value stored as empty document",
				slog.String("error", err.Error()))
		}
		return c.config.Defaults.EmptyValue
	}
	return out
}

// Serialize returns the plain map of a *Document and any other value unchanged
func (c *Caster) Serialize(value any) any {
	if d, ok := value.(*jsonmutator.Document); ok && d != nil {
		return d.ToMap()
	}
	return value
}

// PatchColumn sets path inside stored column text without decoding the
// whole document. nil-like raw text starts from Defaults.EmptyValue.
// Paths use sjson syntax, which matches dot notation for plain keys;
// "-1" appends to an array.
func (c *Caster) PatchColumn(raw string, path string, value any) (string, error) {
	if raw == "" || raw == "null" {
		raw = c.config.Defaults.EmptyValue
	}
	if !gjson.Valid(raw) {
		return "", &jsonmutator.MutatorError{
			Op:      "patch_column",
			Path:    path,
			Message: "stored value is not valid JSON",
			Err:     jsonmutator.ErrInvalidJSON,
		}
	}
	if d, ok := value.(*jsonmutator.Document); ok {
		encoded, err := c.encode(d)
		if err != nil {
			return "", err
		}
		value = json.RawMessage(encoded)
	}

	var (
		out string
		err error
	)
	if rawValue, ok := value.(json.RawMessage); ok {
		out, err = sjson.SetRaw(raw, path, string(rawValue))
	} else {
		out, err = sjson.Set(raw, path, value)
	}
	if err != nil {
		return "", &jsonmutator.MutatorError{
			Op:      "patch_column",
			Path:    path,
			Message: err.Error(),
			Err:     jsonmutator.ErrPatchFailed,
		}
	}
	return out, nil
}

func (c *Caster) encode(d *jsonmutator.Document) (string, error) {
	if c.config.Validation.Enforce {
		if err := d.Clone().WithConfig(c.config).Validate(); err != nil {
			return "", err
		}
	}
	data, err := d.Encode(&c.config.JSONOptions)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Caster) wrap(value any) (string, error) {
	return c.encodeValue([]any{value}, jsonmutator.NewEscapedConfig())
}

func (c *Caster) encodeValue(value any, opts *jsonmutator.EncodeConfig) (string, error) {
	holder := jsonmutator.NewWithConfig(nil, c.config)
	holder.Push(value)
	out, ok := holder.GetJSON("0", opts)
	if !ok {
		return "", &jsonmutator.MutatorError{
			Op:      "set",
			Message: fmt.Sprintf("%T cannot be encoded as JSON", value),
			Err:     jsonmutator.ErrUnsupportedType,
		}
	}
	return out, nil
}

func (c *Caster) empty() *jsonmutator.Document {
	return jsonmutator.NewWithConfig(nil, c.config)
}

func (c *Caster) log(op string, raw any) {
	if c.config.Logger == nil {
		return
	}
	c.config.Logger.Debug("unsupported column value, using empty document",
		slog.String("operation", op),
		slog.String("type", fmt.Sprintf("%T", raw)))
}
