package openal

import "unsafe"

// parseSpecifierTable splits a native double-NUL-terminated run of
// NUL-terminated strings into individual specifiers, preserving driver
// order. A table holding only the terminating double NUL yields an empty
// list. The pointed-to memory is only valid until the next native call,
// so parsing happens immediately and copies every entry.
func parseSpecifierTable(p uintptr) []string {
	specs := []string{}
	if p == 0 {
		return specs
	}
	for {
		n := 0
		for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
			n++
		}
		if n == 0 {
			// Empty entry is the table terminator.
			return specs
		}
		specs = append(specs, string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n)))
		p += uintptr(n) + 1
	}
}
