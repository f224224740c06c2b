package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	inner := New("unexpected token")
	err := NewParseError("docs/guide.md", inner)

	assert.Contains(t, err.Error(), "docs/guide.md")
	assert.Contains(t, err.Error(), "unexpected token")
	assert.ErrorIs(t, err, inner)
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("checkers.naming", "threshold out of range", nil)

	assert.Contains(t, err.Error(), "checkers.naming")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigErrorUnwrap(t *testing.T) {
	inner := New("yaml: line 3")
	err := NewConfigError("", "could not decode", inner)

	require.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "could not decode")
}

func TestPatternError(t *testing.T) {
	err := NewPatternError("[unclosed", New("missing closing ]"))

	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "[unclosed")
}

func TestWrappingPreservesSentinels(t *testing.T) {
	err := fmt.Errorf("check run: %w", ErrNoDocuments)
	assert.ErrorIs(t, err, ErrNoDocuments)
}
