package openal

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/shaban/openal/sys"
)

// stub is a scriptable native API for tests: no real driver is loaded.
// Zero-value behavior is a healthy ALC 1.1 implementation with no
// devices, no extensions, and no queued errors.
type stub struct {
	mu    sync.Mutex
	calls map[string]int

	// errs is a queue of codes handed out by alcGetError; empty means
	// ALC_NO_ERROR.
	errs []int32

	exts     map[string]bool
	enums    map[string]int32
	procs    map[string]any
	strings  map[int32][]byte
	integers map[int32]int32

	openDevice  func(spec string) uintptr
	captureOpen func(spec string, freq uint32, format int32, size int32) uintptr
	captureRead func(dev uintptr, buf unsafe.Pointer, frames int32)

	contextHandle uintptr
	lastAttrs     []int32
	lastCtxDev    uintptr
}

func newStub() *stub {
	return &stub{
		calls:    make(map[string]int),
		exts:     make(map[string]bool),
		enums:    make(map[string]int32),
		procs:    make(map[string]any),
		strings:  make(map[int32][]byte),
		integers: map[int32]int32{sys.MajorVersion: 1, sys.MinorVersion: 1},

		contextHandle: 0xC0C0,
	}
}

func (s *stub) count(name string) {
	s.mu.Lock()
	s.calls[name]++
	s.mu.Unlock()
}

func (s *stub) callCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stub) queueError(codes ...int32) {
	s.mu.Lock()
	s.errs = append(s.errs, codes...)
	s.mu.Unlock()
}

func (s *stub) popError() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errs) == 0 {
		return sys.NoError
	}
	code := s.errs[0]
	s.errs = s.errs[1:]
	return code
}

// setString scripts an alcGetString result; the table form is stored
// as-is so double-NUL payloads survive.
func (s *stub) setString(param int32, table []byte) {
	s.strings[param] = table
}

func bufPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// readAttrs copies an attribute list back out of native form, pairwise
// until the zero terminator.
func readAttrs(p *int32) []int32 {
	if p == nil {
		return nil
	}
	var out []int32
	u := uintptr(unsafe.Pointer(p))
	for {
		key := *(*int32)(unsafe.Pointer(u))
		out = append(out, key)
		if key == 0 {
			return out
		}
		u += unsafe.Sizeof(int32(0))
		out = append(out, *(*int32)(unsafe.Pointer(u)))
		u += unsafe.Sizeof(int32(0))
	}
}

// API materializes the stub as a sys.API function table.
func (s *stub) API() *sys.API {
	return &sys.API{
		OpenDevice: func(spec string) uintptr {
			s.count("alcOpenDevice")
			if s.openDevice != nil {
				return s.openDevice(spec)
			}
			return 0xD1CE
		},
		CloseDevice: func(dev uintptr) bool {
			s.count("alcCloseDevice")
			return true
		},
		CreateContext: func(dev uintptr, attrs *int32) uintptr {
			s.count("alcCreateContext")
			s.mu.Lock()
			s.lastCtxDev = dev
			s.lastAttrs = readAttrs(attrs)
			s.mu.Unlock()
			return s.contextHandle
		},
		MakeContextCurrent: func(ctx uintptr) bool {
			s.count("alcMakeContextCurrent")
			return true
		},
		ProcessContext: func(ctx uintptr) { s.count("alcProcessContext") },
		SuspendContext: func(ctx uintptr) { s.count("alcSuspendContext") },
		DestroyContext: func(ctx uintptr) { s.count("alcDestroyContext") },
		GetCurrentContext: func() uintptr {
			s.count("alcGetCurrentContext")
			return 0
		},
		GetContextsDevice: func(ctx uintptr) uintptr {
			s.count("alcGetContextsDevice")
			return 0
		},
		GetError: func(dev uintptr) int32 {
			s.count("alcGetError")
			return s.popError()
		},
		IsExtensionPresent: func(dev uintptr, name string) bool {
			s.count("alcIsExtensionPresent")
			return s.exts[name]
		},
		GetProcAddress: func(dev uintptr, name string) uintptr {
			s.count("alcGetProcAddress")
			if _, ok := s.procs[name]; ok {
				return 0xF00D
			}
			return 0
		},
		GetEnumValue: func(dev uintptr, name string) int32 {
			s.count("alcGetEnumValue")
			v, ok := s.enums[name]
			if !ok {
				// Real implementations raise INVALID_VALUE for unknown
				// enum names and return 0.
				s.queueError(sys.InvalidValue)
				return 0
			}
			return v
		},
		GetString: func(dev uintptr, param int32) uintptr {
			s.count("alcGetString")
			return bufPtr(s.strings[param])
		},
		GetIntegerv: func(dev uintptr, param int32, size int32, values *int32) {
			s.count("alcGetIntegerv")
			*values = s.integers[param]
		},
		CaptureOpenDevice: func(spec string, freq uint32, format int32, size int32) uintptr {
			s.count("alcCaptureOpenDevice")
			if s.captureOpen != nil {
				return s.captureOpen(spec, freq, format, size)
			}
			return 0xCA90
		},
		CaptureCloseDevice: func(dev uintptr) bool {
			s.count("alcCaptureCloseDevice")
			return true
		},
		CaptureStart: func(dev uintptr) { s.count("alcCaptureStart") },
		CaptureStop:  func(dev uintptr) { s.count("alcCaptureStop") },
		CaptureSamples: func(dev uintptr, buf unsafe.Pointer, samples int32) {
			s.count("alcCaptureSamples")
			if s.captureRead != nil {
				s.captureRead(dev, buf, samples)
			}
		},
		RegisterProc: func(name string, addr uintptr, fptr any) {
			if fn, ok := s.procs[name]; ok {
				reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(fn))
			}
		},
	}
}

// alto builds an Alto wired to this stub, bypassing the dynamic loader.
func (s *stub) alto() *Alto {
	a, err := newAlto(s.API())
	if err != nil {
		panic(err)
	}
	return a
}
