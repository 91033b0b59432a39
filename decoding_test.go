package jsonmutator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("Object", func(t *testing.T) {
		d := FromJSON(`{"a":{"b":1}}`)
		helper.AssertEqual(1.0, d.Get("a.b"))
	})

	t.Run("KeepsKeyOrder", func(t *testing.T) {
		d := FromJSON(`{"zeta":1,"alpha":2,"mid":3}`)
		helper.AssertEqual([]string{"zeta", "alpha", "mid"}, d.Keys())
		helper.AssertEqual(`{"zeta":1,"alpha":2,"mid":3}`, d.ToJSON())
	})

	t.Run("DegradesToEmpty", func(t *testing.T) {
		for _, text := range []string{"not valid json{{{", "{bad json", "", "[1,2]", `"text"`, "42", "null"} {
			d := FromJSON(text)
			helper.AssertTrue(d.IsEmpty(), "input %q", text)
			helper.AssertEqual("{}", d.ToJSON(), "input %q", text)
		}
	})

	t.Run("LogsFallback", func(t *testing.T) {
		cfg, logs := captureLogger(nil)
		FromJSONWithConfig("{oops", cfg)
		helper.AssertTrue(strings.Contains(logs.String(), "level=DEBUG"))
		helper.AssertTrue(strings.Contains(logs.String(), "operation=from_json"))
	})

	t.Run("PreserveNumbers", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PreserveNumbers = true
		d := FromJSONWithConfig(`{"big":12345678901234567890,"f":1.10}`, cfg)
		helper.AssertEqual(json.Number("12345678901234567890"), d.Get("big"))
		helper.AssertEqual(json.Number("1.10"), d.Get("f"))
		helper.AssertTrue(d.Equal(map[string]any{"big": 12345678901234567890.0, "f": 1.1}))
	})

	t.Run("NormalizeKeys", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.NormalizeKeys = true
		d := FromJSONWithConfig("{\"cafe\u0301\":1}", cfg)
		helper.AssertEqual([]string{"caf\u00e9"}, d.Keys())
	})
}

func TestFromJSONStrict(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := FromJSONStrict(`{"a":[1,2]}`)
		require.NoError(t, err)
		assert.Equal(t, []any{1.0, 2.0}, d.Get("a"))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := FromJSONStrict("{bad json")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidJSON)
		assert.Equal(t, ErrCodeInvalidJSON, ErrorCode(err))
	})

	t.Run("NotObject", func(t *testing.T) {
		for _, text := range []string{"[1]", `"s"`, "1", "null"} {
			_, err := FromJSONStrict(text)
			assert.ErrorIs(t, err, ErrNotObject, "input %q", text)
		}
	})

	t.Run("LimitsIgnoredUnlessEnforced", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Validation.MaxDepth = 1
		cfg.Validation.MaxLength = 3
		_, err := FromJSONStrictWithConfig(`{"a":{"b":{}}}`, cfg)
		assert.NoError(t, err)
	})

	t.Run("DepthEnforced", func(t *testing.T) {
		cfg := StrictConfig()
		cfg.Validation.MaxDepth = 2
		_, err := FromJSONStrictWithConfig(`{"a":{"b":{}}}`, cfg)
		assert.ErrorIs(t, err, ErrDepthLimit)

		_, err = FromJSONStrictWithConfig(`{"a":{"b":1}}`, cfg)
		assert.NoError(t, err)
	})

	t.Run("LengthEnforced", func(t *testing.T) {
		cfg := StrictConfig()
		cfg.Validation.MaxLength = 5
		_, err := FromJSONStrictWithConfig(`{"a":1}`, cfg)
		assert.ErrorIs(t, err, ErrSizeLimit)
		assert.Equal(t, ErrCodeSizeLimit, ErrorCode(err))
	})
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(`{"a":1}`))
	assert.True(t, Valid(`[1]`))
	assert.True(t, Valid(`"s"`))
	assert.False(t, Valid(`{"a":`))
	assert.False(t, Valid(``))
}
