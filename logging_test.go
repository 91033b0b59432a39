package jsonmutator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	t.Run("SanitizePath", func(t *testing.T) {
		assert.Equal(t, "[REDACTED_PATH]", sanitizePath("user.Password"))
		assert.Equal(t, "[REDACTED_PATH]", sanitizePath("auth.api_key"))
		assert.Equal(t, "user.name", sanitizePath("user.name"))

		long := strings.Repeat("a", 150)
		assert.Len(t, sanitizePath(long), 100)
		assert.True(t, strings.HasSuffix(sanitizePath(long), "..."))
	})

	t.Run("Truncate", func(t *testing.T) {
		assert.Equal(t, "abc", truncateString("abc", 5))
		assert.Equal(t, "ab", truncateString("abcdef", 2))
		assert.Equal(t, "ab...", truncateString("abcdefgh", 5))
	})

	t.Run("PathRedactedInRecords", func(t *testing.T) {
		cfg, logs := captureLogger(nil)
		d := NewWithConfig(nil, cfg).Set("secret.token", math.NaN())

		_, ok := d.GetJSON("secret.token")
		assert.False(t, ok)
		assert.Contains(t, logs.String(), "path=[REDACTED_PATH]")
		assert.NotContains(t, logs.String(), "secret.token")
	})

	t.Run("NoLogger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			FromJSON("{broken").ToJSON()
			New(map[string]any{"n": math.NaN()}).ToJSON()
		})
	})
}
