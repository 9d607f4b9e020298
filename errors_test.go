package openal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaban/openal/sys"
)

func TestAlcErrorMessages(t *testing.T) {
	assert.Equal(t, "openal: invalid device", ErrInvalidDevice.Error())
	assert.Equal(t, "openal: invalid context", ErrInvalidContext.Error())
	assert.Equal(t, "openal: invalid enum", ErrInvalidEnum.Error())
	assert.Equal(t, "openal: invalid value", ErrInvalidValue.Error())
	assert.Equal(t, "openal: out of memory", ErrOutOfMemory.Error())
	assert.Equal(t, "openal: alc error 0xBEEF", AlcError(0xBEEF).Error())
}

func TestAlcErrorComparesByCode(t *testing.T) {
	wrapped := fmt.Errorf("alcCloseDevice: %w", AlcError(sys.InvalidDevice))
	assert.True(t, errors.Is(wrapped, ErrInvalidDevice))
	assert.False(t, errors.Is(wrapped, ErrInvalidContext))
}

func TestPollErrorMapsCodes(t *testing.T) {
	s := newStub()
	a := s.alto()

	cases := []struct {
		code int32
		want error
	}{
		{sys.InvalidDevice, ErrInvalidDevice},
		{sys.InvalidContext, ErrInvalidContext},
		{sys.InvalidEnum, ErrInvalidEnum},
		{sys.InvalidValue, ErrInvalidValue},
		{sys.OutOfMemory, ErrOutOfMemory},
	}
	for _, tc := range cases {
		s.queueError(tc.code)
		assert.ErrorIs(t, a.pollError(0), tc.want)
	}
	require.NoError(t, a.pollError(0))
}

func TestHandlerFunc(t *testing.T) {
	var got error
	h := HandlerFunc(func(err error) { got = err })
	h.HandleError(ErrOutOfMemory)
	assert.ErrorIs(t, got, ErrOutOfMemory)
}

func TestPanicErrorHandler(t *testing.T) {
	assert.Panics(t, func() {
		PanicErrorHandler{}.HandleError(ErrInvalidDevice)
	})
}
