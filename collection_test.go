package jsonmutator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		c := NewCollection("a", "b")
		assert.Equal(t, 2, c.Count())
		assert.True(t, c.IsList())
		assert.Equal(t, []string{"0", "1"}, c.Keys())

		c.Push("c")
		assert.Equal(t, []any{"a", "b", "c"}, c.Values())

		c.Forget("1")
		assert.False(t, c.IsList())
		assert.Equal(t, []string{"0", "2"}, c.Keys())
	})

	t.Run("FromMap", func(t *testing.T) {
		c := CollectionFromMap(map[string]any{"b": 2, "a": 1})
		assert.Equal(t, []string{"a", "b"}, c.Keys())
		assert.False(t, c.IsList())
		assert.True(t, CollectionFromMap(nil).IsEmpty())
	})

	t.Run("GetPut", func(t *testing.T) {
		c := NewCollection()
		assert.True(t, c.IsEmpty())

		c.Put("obj", map[string]any{"k": []any{1}})
		v, ok := c.Get("obj")
		assert.True(t, ok)
		v.(map[string]any)["k"] = "changed"

		again, _ := c.Get("obj")
		assert.Equal(t, map[string]any{"k": []any{1}}, again)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("FilterMap", func(t *testing.T) {
		c := NewCollection(1, 2, 3, 4)
		even := c.Filter(func(_ string, v any) bool { return v.(int)%2 == 0 })
		assert.Equal(t, map[string]any{"1": 2, "3": 4}, even.ToMap())

		doubled := c.Map(func(_ string, v any) any { return v.(int) * 2 })
		assert.Equal(t, []any{2, 4, 6, 8}, doubled.Values())
		assert.Equal(t, []any{1, 2, 3, 4}, c.Values())
	})

	t.Run("All", func(t *testing.T) {
		c := CollectionFromMap(map[string]any{"x": 1, "y": 2})
		var keys []string
		for k := range c.All() {
			keys = append(keys, k)
		}
		assert.Equal(t, []string{"x", "y"}, keys)
	})

	t.Run("ToDocument", func(t *testing.T) {
		c := CollectionFromMap(map[string]any{"user": map[string]any{"name": "A"}})
		d := c.ToDocument()
		assert.Equal(t, "A", d.Get("user.name"))

		d.Set("user.name", "B")
		v, _ := c.Get("user")
		assert.Equal(t, map[string]any{"name": "A"}, v)

		round := d.ToCollection()
		assert.Equal(t, d.ToMap(), round.ToMap())
	})
}
