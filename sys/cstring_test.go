package sys

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	buf := []byte("OpenAL Soft\x00trailing garbage")
	got := GoString(uintptr(unsafe.Pointer(&buf[0])))
	assert.Equal(t, "OpenAL Soft", got)
}

func TestGoStringEmpty(t *testing.T) {
	buf := []byte{0}
	assert.Equal(t, "", GoString(uintptr(unsafe.Pointer(&buf[0]))))
}

func TestGoStringNull(t *testing.T) {
	assert.Equal(t, "", GoString(0))
}
