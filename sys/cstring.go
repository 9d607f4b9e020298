package sys

import "unsafe"

// GoString copies a NUL-terminated C string into a Go string. A zero
// pointer yields "". The memory is only guaranteed valid until the next
// native call, so callers must copy before calling back into the library.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
