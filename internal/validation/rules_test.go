package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/messaging/internal/errors"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("alice"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("alice"))
	assert.Error(t, NoWhitespace.Validate(" alice"))
	assert.Error(t, NoWhitespace.Validate("alice "))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(apperrors.New("username: cannot be blank"))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("NilStaysNil", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})
}
