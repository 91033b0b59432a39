package jsonmutator

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ sql.Scanner   = (*Document)(nil)
	_ driver.Valuer = (*Document)(nil)
)

func TestScan(t *testing.T) {
	t.Run("Bytes", func(t *testing.T) {
		var d Document
		require.NoError(t, d.Scan([]byte(`{"a":{"b":1}}`)))
		assert.Equal(t, 1.0, d.Get("a.b"))
	})

	t.Run("String", func(t *testing.T) {
		d := New(map[string]any{"stale": true})
		require.NoError(t, d.Scan(`{"fresh":true}`))
		assert.Equal(t, []string{"fresh"}, d.Keys())
	})

	t.Run("NullAndGarbage", func(t *testing.T) {
		d := New(map[string]any{"stale": true})
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsEmpty())

		require.NoError(t, d.Scan("{bad json"))
		assert.True(t, d.IsEmpty())

		require.NoError(t, d.Scan("[1,2]"))
		assert.True(t, d.IsEmpty())
	})

	t.Run("UnsupportedSource", func(t *testing.T) {
		var d Document
		assert.ErrorIs(t, d.Scan(42), ErrUnsupportedType)
	})
}

func TestValue(t *testing.T) {
	t.Run("Compact", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.JSONOptions.Pretty = true
		d := FromJSONWithConfig(`{"b":1,"a":[true]}`, cfg)

		v, err := d.Value()
		require.NoError(t, err)
		assert.Equal(t, `{"b":1,"a":[true]}`, v)
	})

	t.Run("NilDocument", func(t *testing.T) {
		var d *Document
		v, err := d.Value()
		require.NoError(t, err)
		assert.Equal(t, "{}", v)
	})

	t.Run("EnforcedLimits", func(t *testing.T) {
		cfg := StrictConfig()
		cfg.Validation.MaxDepth = 1
		d := NewWithConfig(map[string]any{"a": map[string]any{}}, cfg)
		_, err := d.Value()
		assert.ErrorIs(t, err, ErrDepthLimit)
	})

	t.Run("ScanValueRoundTrip", func(t *testing.T) {
		src := FromJSON(`{"user":{"tags":["x","y"]},"n":null}`)
		v, err := src.Value()
		require.NoError(t, err)

		var dst Document
		require.NoError(t, dst.Scan(v))
		assert.True(t, dst.Equal(src))
	})
}
