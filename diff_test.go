package jsonmutator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	base := FromJSON(`{"a":1,"b":2}`)

	t.Run("Identical", func(t *testing.T) {
		assert.Nil(t, base.Diff(FromJSON(`{"b":2,"a":1}`)))
		assert.Nil(t, base.Diff(map[string]any{"a": 1, "b": 2}))
	})

	t.Run("Changed", func(t *testing.T) {
		diffs := base.Diff(FromJSON(`{"a":1,"b":3}`))
		assert.Contains(t, diffs, LineDiff{Op: DiffDelete, Text: `  "b": 2`})
		assert.Contains(t, diffs, LineDiff{Op: DiffInsert, Text: `  "b": 3`})
		assert.Contains(t, diffs, LineDiff{Op: DiffEqual, Text: `  "a": 1,`})

		formatted := FormatDiff(diffs)
		assert.Contains(t, formatted, "-   \"b\": 2\n")
		assert.Contains(t, formatted, "+   \"b\": 3\n")
		assert.Contains(t, formatted, "    \"a\": 1,\n")
	})

	t.Run("AgainstNonObject", func(t *testing.T) {
		diffs := base.Diff("scalar")
		assert.Contains(t, diffs, LineDiff{Op: DiffInsert, Text: `{}`})
	})
}
