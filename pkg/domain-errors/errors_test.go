package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAndHasCode(t *testing.T) {
	cause := errors.New("connection refused")
	inner := Wrap(cause, CodeUnavailable, "load rows")
	outer := Wrap(inner, CodeInternal, "build cascade")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeUnavailable))
	assert.False(t, HasCode(outer, CodeBadRequest))
	assert.True(t, Is(outer, CodeInternal))
	assert.False(t, Is(outer, CodeUnavailable))
	assert.ErrorIs(t, outer, cause)
	assert.Equal(t, "build cascade: load rows: connection refused", outer.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "noop"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeBadRequest, CodeOf(New(CodeBadRequest, "bad")))
	assert.Equal(t, CodeInvalidInput, CodeOf(fmt.Errorf("ctx: %w", New(CodeInvalidInput, "row 3"))))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
