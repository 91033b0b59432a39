package jsonmutator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreserveNumbers = true
	d := FromJSONWithConfig(`{"name":"Alice","age":30,"tags":["x"]}`, cfg)

	out := d.Dump()
	assert.Contains(t, out, `"Alice"`)
	assert.Contains(t, out, "(json.Number)")
	assert.Contains(t, out, "[]interface {}")
	assert.Less(t, strings.Index(out, `"age"`), strings.Index(out, `"name"`), "keys are sorted")

	assert.Equal(t, json.Number("30"), d.Get("age"))
}
