package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeNotFound, "record missing")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeValidation))
	})

	t.Run("matches code through wrapping", func(t *testing.T) {
		inner := New(CodeValidation, "empty payload")
		outer := Wrap(inner, CodeInternal, "upload failed")
		assert.True(t, HasCode(outer, CodeInternal))
		assert.True(t, HasCode(outer, CodeValidation))
	})

	t.Run("matches through fmt.Errorf wrapping", func(t *testing.T) {
		inner := New(CodeNotFound, "gone")
		wrapped := fmt.Errorf("store: %w", inner)
		assert.True(t, HasCode(wrapped, CodeNotFound))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil in nil out", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "nothing"))
	})

	t.Run("preserves cause for errors.Is", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(cause, CodeInternal, "save failed")
		assert.ErrorIs(t, err, cause)
	})
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, CodeValidation, CodeOf(New(CodeValidation, "bad")))
	require.Equal(t, CodeInternal, CodeOf(errors.New("plain")))

	outer := Wrap(New(CodeNotFound, "gone"), CodeInternal, "lookup")
	require.Equal(t, CodeInternal, CodeOf(outer))
}

func TestErrorString(t *testing.T) {
	err := New(CodeBadRequest, "invalid body")
	assert.Equal(t, "bad_request: invalid body", err.Error())

	wrapped := Wrap(errors.New("eof"), CodeBadRequest, "decode")
	assert.Equal(t, "bad_request: decode: eof", wrapped.Error())
}
