// Package ext resolves and caches optional ALC extensions.
//
// Each known extension has a descriptor type whose fields are resolved
// individually: a driver may advertise an extension string yet fail to
// resolve one of its symbols, so every function pointer and constant is
// independently fallible. Descriptors are memoized per cache; a lookup
// that failed once keeps failing without re-querying the driver.
package ext

import (
	"fmt"
	"unsafe"

	"github.com/shaban/openal/sys"
)

// Alc identifies a cacheable device-level ALC extension.
type Alc int

const (
	AlcDedicated Alc = iota
	AlcDisconnect
	AlcEFX
	AlcSoftHRTF
	AlcSoftPauseDevice
)

func (a Alc) String() string {
	switch a {
	case AlcDedicated:
		return "ALC_EXT_DEDICATED"
	case AlcDisconnect:
		return "ALC_EXT_DISCONNECT"
	case AlcEFX:
		return "ALC_EXT_EFX"
	case AlcSoftHRTF:
		return "ALC_SOFT_HRTF"
	case AlcSoftPauseDevice:
		return "ALC_SOFT_pause_device"
	default:
		return fmt.Sprintf("ALC(%d)", int(a))
	}
}

// NotPresentError reports that the driver does not advertise an extension.
type NotPresentError struct {
	Ext string
}

func (e *NotPresentError) Error() string {
	return "ext: extension not present: " + e.Ext
}

// SymbolError reports that a single symbol inside an otherwise resolved
// extension could not be looked up.
type SymbolError struct {
	Ext    string
	Symbol string
}

func (e *SymbolError) Error() string {
	return "ext: " + e.Ext + ": unresolved symbol " + e.Symbol
}

// Enum is a lazily resolved extension constant.
type Enum struct {
	symbol string
	value  int32
	err    error
}

// Get returns the resolved constant, or the resolution failure recorded
// when the owning descriptor was built.
func (e Enum) Get() (int32, error) {
	if e.err != nil {
		return 0, e.err
	}
	return e.value, nil
}

// Func is a lazily resolved extension entry point of type T.
type Func[T any] struct {
	symbol string
	fn     T
	err    error
}

// Get returns the bound entry point, or the resolution failure recorded
// when the owning descriptor was built.
func (f Func[T]) Get() (T, error) {
	if f.err != nil {
		var zero T
		return zero, f.err
	}
	return f.fn, nil
}

// resolver scopes field resolution to one extension on one device handle.
// A zero dev handle resolves against the global (no-device) namespace.
type resolver struct {
	api *sys.API
	dev uintptr
	ext string
}

func (r resolver) enum(symbol string) Enum {
	v := r.api.GetEnumValue(r.dev, symbol)
	// Unknown names raise ALC_INVALID_VALUE through the error poll; the
	// returned value alone cannot distinguish failure, since 0 is a
	// legitimate constant (ALC_HRTF_DISABLED_SOFT among others).
	if code := r.api.GetError(r.dev); code != sys.NoError {
		return Enum{symbol: symbol, err: &SymbolError{Ext: r.ext, Symbol: symbol}}
	}
	return Enum{symbol: symbol, value: v}
}

func resolveFunc[T any](r resolver, symbol string) Func[T] {
	addr := r.api.GetProcAddress(r.dev, symbol)
	if addr == 0 {
		return Func[T]{symbol: symbol, err: &SymbolError{Ext: r.ext, Symbol: symbol}}
	}
	var fn T
	r.api.RegisterProc(symbol, addr, &fn)
	return Func[T]{symbol: symbol, fn: fn}
}

// EnumerateAll is the ALC_ENUMERATE_ALL_EXT extension: complete device
// enumeration including devices hidden from the standard specifier lists.
type EnumerateAll struct {
	DefaultAllDevicesSpecifier Enum
	AllDevicesSpecifier        Enum
}

func newEnumerateAll(r resolver) *EnumerateAll {
	return &EnumerateAll{
		DefaultAllDevicesSpecifier: r.enum("ALC_DEFAULT_ALL_DEVICES_SPECIFIER"),
		AllDevicesSpecifier:        r.enum("ALC_ALL_DEVICES_SPECIFIER"),
	}
}

// Disconnect is the ALC_EXT_DISCONNECT extension: connection-state polling.
type Disconnect struct {
	Connected Enum
}

func newDisconnect(r resolver) *Disconnect {
	return &Disconnect{Connected: r.enum("ALC_CONNECTED")}
}

// Dedicated is the ALC_EXT_DEDICATED extension. Its symbols live on the
// AL side; at the ALC level the advertised string is the whole capability.
type Dedicated struct{}

func newDedicated(resolver) *Dedicated { return &Dedicated{} }

// EFX is the ALC_EXT_EFX extension's context-level surface.
type EFX struct {
	MajorVersion      Enum
	MinorVersion      Enum
	MaxAuxiliarySends Enum
}

func newEFX(r resolver) *EFX {
	return &EFX{
		MajorVersion:      r.enum("ALC_EFX_MAJOR_VERSION"),
		MinorVersion:      r.enum("ALC_EFX_MINOR_VERSION"),
		MaxAuxiliarySends: r.enum("ALC_MAX_AUXILIARY_SENDS"),
	}
}

// SoftHRTF is the ALC_SOFT_HRTF extension: HRTF configuration and status.
type SoftHRTF struct {
	HRTF              Enum
	HRTFID            Enum
	DontCare          Enum
	HRTFStatus        Enum
	NumHRTFSpecifiers Enum
	HRTFSpecifier     Enum

	HRTFDisabled           Enum
	HRTFEnabled            Enum
	HRTFDenied             Enum
	HRTFRequired           Enum
	HRTFHeadphonesDetected Enum
	HRTFUnsupportedFormat  Enum

	GetStringi  Func[func(dev uintptr, param, index int32) uintptr]
	ResetDevice Func[func(dev uintptr, attrs *int32) bool]
}

func newSoftHRTF(r resolver) *SoftHRTF {
	return &SoftHRTF{
		HRTF:              r.enum("ALC_HRTF_SOFT"),
		HRTFID:            r.enum("ALC_HRTF_ID_SOFT"),
		DontCare:          r.enum("ALC_DONT_CARE_SOFT"),
		HRTFStatus:        r.enum("ALC_HRTF_STATUS_SOFT"),
		NumHRTFSpecifiers: r.enum("ALC_NUM_HRTF_SPECIFIERS_SOFT"),
		HRTFSpecifier:     r.enum("ALC_HRTF_SPECIFIER_SOFT"),

		HRTFDisabled:           r.enum("ALC_HRTF_DISABLED_SOFT"),
		HRTFEnabled:            r.enum("ALC_HRTF_ENABLED_SOFT"),
		HRTFDenied:             r.enum("ALC_HRTF_DENIED_SOFT"),
		HRTFRequired:           r.enum("ALC_HRTF_REQUIRED_SOFT"),
		HRTFHeadphonesDetected: r.enum("ALC_HRTF_HEADPHONES_DETECTED_SOFT"),
		HRTFUnsupportedFormat:  r.enum("ALC_HRTF_UNSUPPORTED_FORMAT_SOFT"),

		GetStringi:  resolveFunc[func(dev uintptr, param, index int32) uintptr](r, "alcGetStringiSOFT"),
		ResetDevice: resolveFunc[func(dev uintptr, attrs *int32) bool](r, "alcResetDeviceSOFT"),
	}
}

// SoftPauseDevice is the ALC_SOFT_pause_device extension.
type SoftPauseDevice struct {
	DevicePause  Func[func(dev uintptr)]
	DeviceResume Func[func(dev uintptr)]
}

func newSoftPauseDevice(r resolver) *SoftPauseDevice {
	return &SoftPauseDevice{
		DevicePause:  resolveFunc[func(dev uintptr)](r, "alcDevicePauseSOFT"),
		DeviceResume: resolveFunc[func(dev uintptr)](r, "alcDeviceResumeSOFT"),
	}
}

// SoftLoopback is the ALC_SOFT_loopback extension: rendering into an
// application-supplied buffer instead of a physical output.
type SoftLoopback struct {
	FormatChannels Enum
	FormatType     Enum

	ChannelsMono   Enum
	ChannelsStereo Enum
	ChannelsQuad   Enum
	Channels51     Enum
	Channels61     Enum
	Channels71     Enum

	TypeU8  Enum
	TypeI16 Enum
	TypeF32 Enum

	OpenDevice    Func[func(specifier string) uintptr]
	RenderSamples Func[func(dev uintptr, buf unsafe.Pointer, samples int32)]
}

func newSoftLoopback(r resolver) *SoftLoopback {
	return &SoftLoopback{
		FormatChannels: r.enum("ALC_FORMAT_CHANNELS_SOFT"),
		FormatType:     r.enum("ALC_FORMAT_TYPE_SOFT"),

		ChannelsMono:   r.enum("ALC_MONO_SOFT"),
		ChannelsStereo: r.enum("ALC_STEREO_SOFT"),
		ChannelsQuad:   r.enum("ALC_QUAD_SOFT"),
		Channels51:     r.enum("ALC_5POINT1_SOFT"),
		Channels61:     r.enum("ALC_6POINT1_SOFT"),
		Channels71:     r.enum("ALC_7POINT1_SOFT"),

		TypeU8:  r.enum("ALC_UNSIGNED_BYTE_SOFT"),
		TypeI16: r.enum("ALC_SHORT_SOFT"),
		TypeF32: r.enum("ALC_FLOAT_SOFT"),

		OpenDevice:    resolveFunc[func(specifier string) uintptr](r, "alcLoopbackOpenDeviceSOFT"),
		RenderSamples: resolveFunc[func(dev uintptr, buf unsafe.Pointer, samples int32)](r, "alcRenderSamplesSOFT"),
	}
}
