package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codeError{code: "CART_SETTLING"}, "add item")

	got, ok := AsType[*codeError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "CART_SETTLING", got.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	base := New("store down")
	err := Wrapf(base, "load cart %d", 1)

	assert.True(t, Is(err, base))
	assert.Equal(t, base, Cause(err))
	assert.Equal(t, "load cart 1: store down", err.Error())
}

func TestJoinSkipsNil(t *testing.T) {
	assert.Nil(t, Join(nil, nil))

	a := New("a")
	assert.True(t, Is(Join(nil, a), a))
}
