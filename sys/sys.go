// Package sys holds the loaded OpenAL implementation: a table of resolved
// ALC entry points plus the integer constants the ALC layer speaks in.
//
// The table is populated once at load time and is immutable afterwards. A
// missing required entry point is a hard load failure; optional extension
// entry points are resolved later, per device, by the ext package.
package sys

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// API is the resolved function table of one OpenAL implementation.
//
// All handles are raw native pointers carried as uintptr. Specifier
// arguments are Go strings; purego NUL-terminates them at the boundary.
// alcGetString returns a raw pointer because enumeration results are
// double-NUL-terminated tables that a string conversion would truncate.
type API struct {
	lib uintptr

	OpenDevice         func(specifier string) uintptr
	CloseDevice        func(dev uintptr) bool
	CreateContext      func(dev uintptr, attrs *int32) uintptr
	MakeContextCurrent func(ctx uintptr) bool
	ProcessContext     func(ctx uintptr)
	SuspendContext     func(ctx uintptr)
	DestroyContext     func(ctx uintptr)
	GetCurrentContext  func() uintptr
	GetContextsDevice  func(ctx uintptr) uintptr
	GetError           func(dev uintptr) int32
	IsExtensionPresent func(dev uintptr, extName string) bool
	GetProcAddress     func(dev uintptr, funcName string) uintptr
	GetEnumValue       func(dev uintptr, enumName string) int32
	GetString          func(dev uintptr, param int32) uintptr
	GetIntegerv        func(dev uintptr, param int32, size int32, values *int32)

	CaptureOpenDevice  func(specifier string, freq uint32, format int32, bufSize int32) uintptr
	CaptureCloseDevice func(dev uintptr) bool
	CaptureStart       func(dev uintptr)
	CaptureStop        func(dev uintptr)
	CaptureSamples     func(dev uintptr, buf unsafe.Pointer, samples int32)

	// RegisterProc binds a function pointer obtained through
	// alcGetProcAddress to a Go function value. The loader installs a
	// purego-backed implementation; tests substitute their own.
	RegisterProc func(name string, addr uintptr, fptr any)
}

// bindAPI resolves every required ALC entry point from an already opened
// library handle. Any missing symbol fails the whole load.
func bindAPI(lib uintptr) (*API, error) {
	a := &API{lib: lib}
	a.RegisterProc = func(name string, addr uintptr, fptr any) {
		purego.RegisterFunc(fptr, addr)
	}

	required := []struct {
		name string
		fptr any
	}{
		{"alcOpenDevice", &a.OpenDevice},
		{"alcCloseDevice", &a.CloseDevice},
		{"alcCreateContext", &a.CreateContext},
		{"alcMakeContextCurrent", &a.MakeContextCurrent},
		{"alcProcessContext", &a.ProcessContext},
		{"alcSuspendContext", &a.SuspendContext},
		{"alcDestroyContext", &a.DestroyContext},
		{"alcGetCurrentContext", &a.GetCurrentContext},
		{"alcGetContextsDevice", &a.GetContextsDevice},
		{"alcGetError", &a.GetError},
		{"alcIsExtensionPresent", &a.IsExtensionPresent},
		{"alcGetProcAddress", &a.GetProcAddress},
		{"alcGetEnumValue", &a.GetEnumValue},
		{"alcGetString", &a.GetString},
		{"alcGetIntegerv", &a.GetIntegerv},
		{"alcCaptureOpenDevice", &a.CaptureOpenDevice},
		{"alcCaptureCloseDevice", &a.CaptureCloseDevice},
		{"alcCaptureStart", &a.CaptureStart},
		{"alcCaptureStop", &a.CaptureStop},
		{"alcCaptureSamples", &a.CaptureSamples},
	}
	for _, sym := range required {
		addr, err := lookupSymbol(lib, sym.name)
		if err != nil {
			return nil, fmt.Errorf("sys: required entry point %s: %w", sym.name, err)
		}
		purego.RegisterFunc(sym.fptr, addr)
	}
	return a, nil
}
