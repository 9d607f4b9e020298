// Package openal is a safety and ergonomics layer over a dynamically
// loaded OpenAL implementation. It wraps the raw, error-poll-based ALC
// surface in an ownership-checked resource model: devices close exactly
// once, optional extensions surface as typed fallible capabilities, and
// everything that changes the process-wide current context serializes
// through one lock.
package openal

import (
	"fmt"
	"sync"

	"github.com/shaban/openal/ext"
	"github.com/shaban/openal/sample"
	"github.com/shaban/openal/sys"
)

// Alto is the entry point of the API. Loading it binds an OpenAL
// implementation; from here devices can be enumerated and opened.
//
// An Alto is safe for concurrent use from any number of goroutines.
type Alto struct {
	api     *sys.API
	exts    *ext.NullCache
	ctxLock sync.Mutex

	// handler receives teardown failures. Set it before sharing the
	// Alto across goroutines.
	handler ErrorHandler
}

// LoadDefault loads the default OpenAL implementation for the platform,
// preferring OpenAL Soft where it can be told apart.
func LoadDefault() (*Alto, error) {
	api, err := sys.LoadDefault()
	if err != nil {
		return nil, err
	}
	return newAlto(api)
}

// Load loads a specific OpenAL implementation by path or library name.
func Load(path string) (*Alto, error) {
	api, err := sys.Load(path)
	if err != nil {
		return nil, err
	}
	return newAlto(api)
}

func newAlto(api *sys.API) (*Alto, error) {
	a := &Alto{
		api:     api,
		exts:    ext.NewNullCache(api),
		handler: DefaultErrorHandler{},
	}
	if err := a.checkVersion(); err != nil {
		return nil, err
	}
	return a, nil
}

// checkVersion gates every other operation on the implementation
// reporting at least ALC 1.1.
func (a *Alto) checkVersion() error {
	var major, minor int32
	a.api.GetIntegerv(0, sys.MajorVersion, 1, &major)
	a.api.GetIntegerv(0, sys.MinorVersion, 1, &minor)

	if major > 1 || (major == 1 && minor >= 1) {
		return nil
	}
	return ErrUnsupportedVersion
}

// SetErrorHandler replaces the sink for teardown failures. It must be
// called before the Alto is shared across goroutines.
func (a *Alto) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = DefaultErrorHandler{}
	}
	a.handler = h
}

func (a *Alto) report(err error) {
	a.handler.HandleError(err)
}

// pollError drains the native error state after an operation on the
// given device handle (zero for global operations). The native API
// reports errors through this side channel rather than return values,
// so it must run after every call that can fail.
func (a *Alto) pollError(dev uintptr) error {
	if code := a.api.GetError(dev); code != sys.NoError {
		return AlcError(code)
	}
	return nil
}

// DefaultOutput returns the specifier of the default output device. The
// complete-enumeration extension is preferred when it resolves.
func (a *Alto) DefaultOutput() (string, error) {
	var p uintptr
	if ea, err := a.exts.EnumerateAll(); err == nil {
		param, err := ea.DefaultAllDevicesSpecifier.Get()
		if err != nil {
			return "", err
		}
		p = a.api.GetString(0, param)
	} else {
		p = a.api.GetString(0, sys.DefaultDeviceSpecifier)
	}
	spec := sys.GoString(p)
	if err := a.pollError(0); err != nil {
		return "", err
	}
	return spec, nil
}

// DefaultCapture returns the specifier of the default capture device.
func (a *Alto) DefaultCapture() (string, error) {
	spec := sys.GoString(a.api.GetString(0, sys.CaptureDefaultDeviceSpecifier))
	if err := a.pollError(0); err != nil {
		return "", err
	}
	return spec, nil
}

// EnumerateOutputs lists the available output devices in driver order.
// The complete-enumeration extension is preferred when it resolves.
func (a *Alto) EnumerateOutputs() ([]string, error) {
	var p uintptr
	if ea, err := a.exts.EnumerateAll(); err == nil {
		param, err := ea.AllDevicesSpecifier.Get()
		if err != nil {
			return nil, err
		}
		p = a.api.GetString(0, param)
	} else {
		p = a.api.GetString(0, sys.DeviceSpecifier)
	}
	if err := a.pollError(0); err != nil {
		return nil, err
	}
	return parseSpecifierTable(p), nil
}

// EnumerateCaptures lists the available capture devices in driver order.
func (a *Alto) EnumerateCaptures() ([]string, error) {
	p := a.api.GetString(0, sys.CaptureDeviceSpecifier)
	if err := a.pollError(0); err != nil {
		return nil, err
	}
	return parseSpecifierTable(p), nil
}

// Open opens an output device by specifier, or the default output device
// when specifier is empty.
func (a *Alto) Open(specifier string) (*OutputDevice, error) {
	spec, err := a.resolveOutputSpecifier(specifier)
	if err != nil {
		return nil, err
	}

	dev := a.api.OpenDevice(spec)
	if err := a.pollError(0); err != nil {
		return nil, err
	}
	if dev == 0 {
		// Some drivers return a null handle without raising a code.
		return nil, ErrInvalidDevice
	}

	return &OutputDevice{
		alto: a,
		spec: spec,
		dev:  dev,
		exts: ext.NewCache(a.api, dev),
	}, nil
}

// OpenLoopback opens a loopback device rendering F-shaped frames, by
// specifier or the default output device when specifier is empty. It
// fails fast when the loopback extension is absent.
//
// This is a function rather than a method because Go methods cannot
// introduce type parameters.
func OpenLoopback[F sample.LoopbackFrame](a *Alto, specifier string) (*LoopbackDevice[F], error) {
	sl, err := a.exts.SoftLoopback()
	if err != nil {
		return nil, err
	}
	open, err := sl.OpenDevice.Get()
	if err != nil {
		return nil, err
	}

	spec, err := a.resolveOutputSpecifier(specifier)
	if err != nil {
		return nil, err
	}

	dev := open(spec)
	if err := a.pollError(0); err != nil {
		return nil, err
	}
	if dev == 0 {
		return nil, ErrInvalidDevice
	}

	return &LoopbackDevice[F]{
		alto: a,
		spec: spec,
		dev:  dev,
		exts: ext.NewCache(a.api, dev),
	}, nil
}

// OpenCapture opens a capture device by specifier, or the default
// capture device when specifier is empty, with an explicit sample rate,
// wire format, and ring buffer size in sample frames.
func (a *Alto) OpenCapture(specifier string, freq uint32, format sample.Format, bufSize int32) (*CaptureDevice, error) {
	spec := specifier
	if spec == "" {
		var err error
		spec, err = a.DefaultCapture()
		if err != nil {
			return nil, err
		}
	}

	dev := a.api.CaptureOpenDevice(spec, freq, int32(format), bufSize)
	if err := a.pollError(0); err != nil {
		return nil, err
	}
	if dev == 0 {
		return nil, ErrInvalidDevice
	}

	return &CaptureDevice{alto: a, spec: spec, dev: dev}, nil
}

func (a *Alto) resolveOutputSpecifier(specifier string) (string, error) {
	if specifier != "" {
		return specifier, nil
	}
	return a.DefaultOutput()
}

// API exposes the raw function table for callers that need an entry
// point this layer does not wrap.
func (a *Alto) API() *sys.API {
	return a.api
}

func (a *Alto) String() string {
	return fmt.Sprintf("Alto(%p)", a.api)
}
