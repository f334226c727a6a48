package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	t.Run("persistence cause stays out of the message", func(t *testing.T) {
		err := NewPersistenceError("failed to update asset", 1590659063, fmt.Errorf("disk full"))
		assert.NotContains(t, err.Error(), "disk full")
		assert.Contains(t, err.Error(), "failed to update asset")
	})

	t.Run("other causes are included", func(t *testing.T) {
		err := NewInternalError("boom").WithCause(fmt.Errorf("root cause"))
		assert.Contains(t, err.Error(), "root cause")
	})
}

func TestAppErrorExtensions(t *testing.T) {
	t.Run("type and code", func(t *testing.T) {
		err := NewInvalidReferenceError("unknown tag", 1591561845)
		ext := err.Extensions()
		assert.Equal(t, "INVALID_REFERENCE", ext["type"])
		assert.Equal(t, 1591561845, ext["code"])
	})

	t.Run("zero code is omitted", func(t *testing.T) {
		ext := NewValidationError("bad input").Extensions()
		assert.Equal(t, "VALIDATION", ext["type"])
		_, ok := ext["code"]
		assert.False(t, ok)
	})
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("x")))
	assert.True(t, IsNotFound(NewNotFoundError("asset")))
	assert.True(t, IsInvalidReference(NewInvalidReferenceError("x", 1)))
	assert.True(t, IsPersistence(NewPersistenceError("x", 1, nil)))
	assert.True(t, IsNotImplemented(NewNotImplementedError("op", 1)))
	assert.False(t, IsValidation(fmt.Errorf("plain")))
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("app error keeps its type", func(t *testing.T) {
		wrapped := Wrap(NewNotFoundError("asset"), "loading")
		require.Error(t, wrapped)
		assert.True(t, IsNotFound(wrapped))
		assert.Contains(t, wrapped.Error(), "loading")
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		wrapped := Wrap(fmt.Errorf("plain"), "doing work")
		assert.True(t, IsInternal(wrapped))
	})
}
