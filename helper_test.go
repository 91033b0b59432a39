package jsonmutator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelper bundles the assertions shared by the document tests
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	assert.Equal(h.t, expected, actual, msgAndArgs...)
}

// AssertTrue checks if value is true
func (h *TestHelper) AssertTrue(value bool, msgAndArgs ...any) {
	h.t.Helper()
	assert.True(h.t, value, msgAndArgs...)
}

// AssertFalse checks if value is false
func (h *TestHelper) AssertFalse(value bool, msgAndArgs ...any) {
	h.t.Helper()
	assert.False(h.t, value, msgAndArgs...)
}

// AssertNil checks if value is nil
func (h *TestHelper) AssertNil(value any, msgAndArgs ...any) {
	h.t.Helper()
	assert.Nil(h.t, value, msgAndArgs...)
}

// AssertNoError stops the test on an unexpected error
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	require.NoError(h.t, err, msgAndArgs...)
}

// AssertErrorIs checks that err wraps target
func (h *TestHelper) AssertErrorIs(err, target error, msgAndArgs ...any) {
	h.t.Helper()
	assert.ErrorIs(h.t, err, target, msgAndArgs...)
}

// AssertJSON checks the compact JSON text of a document
func (h *TestHelper) AssertJSON(expected string, d *Document) {
	h.t.Helper()
	assert.JSONEq(h.t, expected, d.ToJSON())
}

// captureLogger returns a config whose logger writes text records to the returned buffer
func captureLogger(cfg *Config) (*Config, *bytes.Buffer) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var buf bytes.Buffer
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return cfg, &buf
}
