package openal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shaban/openal/ext"
	"github.com/shaban/openal/sys"
)

// Device is the capability surface shared by output and loopback
// devices. Two values are the same device iff their raw handles are
// equal; compare with Raw, not specifier strings.
type Device interface {
	// Alto returns the instance this device was opened from.
	Alto() *Alto
	// Specifier returns the string this device was opened with.
	Specifier() string
	// Raw returns the native device handle.
	Raw() uintptr
	// IsExtensionPresent reports whether a device-level extension
	// resolved for this device.
	IsExtensionPresent(ext.Alc) bool
	// Connected polls the connection state. Once it reports false the
	// device is permanently unusable and must be closed and reopened;
	// it will not become true again.
	Connected() (bool, error)
	// EnumerateSoftHRTFs lists the HRTF specifiers supported by this
	// device. Requires ALC_SOFT_HRTF.
	EnumerateSoftHRTFs() ([]string, error)
	// SoftHRTFStatus reports the device's current HRTF mode. Requires
	// ALC_SOFT_HRTF.
	SoftHRTFStatus() (SoftHRTFStatus, error)
}

// OutputDevice is an audio output as exposed by the implementation,
// typically a device endpoint reported by the operating system.
type OutputDevice struct {
	alto *Alto
	spec string
	dev  uintptr
	exts *ext.Cache

	// pauseRC counts outstanding SoftPauseLocks; the native device is
	// paused iff the count is above zero.
	pauseRC   atomic.Int32
	closeOnce sync.Once
}

// Alto returns the instance this device was opened from.
func (d *OutputDevice) Alto() *Alto { return d.alto }

// Specifier returns the string this device was opened with.
func (d *OutputDevice) Specifier() string { return d.spec }

// Raw returns the native device handle.
func (d *OutputDevice) Raw() uintptr { return d.dev }

// Equal reports raw-handle identity.
func (d *OutputDevice) Equal(other *OutputDevice) bool {
	return other != nil && d.dev == other.dev
}

// IsExtensionPresent reports whether a device-level extension resolved
// for this device.
func (d *OutputDevice) IsExtensionPresent(a ext.Alc) bool {
	return d.exts.Present(a)
}

// Extensions exposes this device's extension cache for callers that
// need a capability this layer does not wrap.
func (d *OutputDevice) Extensions() *ext.Cache { return d.exts }

// NewContext creates a rendering context on this device. nil attrs asks
// the implementation for its default attributes. Context creation is
// serialized process-wide because the native current-context state is
// global.
func (d *OutputDevice) NewContext(attrs *ContextAttrs) (*Context, error) {
	attrsVec, err := makeContextAttrs(d.exts, attrs)
	if err != nil {
		return nil, err
	}
	return newContext(d.alto, d, d.dev, attrsVec)
}

// SoftPause pauses output on this device until the returned lock is
// released. Locks stack: output resumes when the last one goes away.
// Requires ALC_SOFT_pause_device.
func (d *OutputDevice) SoftPause() (*SoftPauseLock, error) {
	return newSoftPauseLock(d)
}

// SoftReset resets this device in place with new attributes. Requires
// ALC_SOFT_HRTF.
func (d *OutputDevice) SoftReset(attrs *ContextAttrs) error {
	ash, err := d.exts.SoftHRTF()
	if err != nil {
		return err
	}
	reset, err := ash.ResetDevice.Get()
	if err != nil {
		return err
	}
	attrsVec, err := makeContextAttrs(d.exts, attrs)
	if err != nil {
		return err
	}
	reset(d.dev, attrsPointer(attrsVec))
	return d.alto.pollError(d.dev)
}

// Connected polls the connection state. Requires ALC_EXT_DISCONNECT.
// Once this reports false the device must be closed and a fresh one
// opened; it will not become true again.
func (d *OutputDevice) Connected() (bool, error) {
	return deviceConnected(d.alto, d.exts, d.dev)
}

// EnumerateSoftHRTFs lists the HRTF specifiers supported by this
// device. Requires ALC_SOFT_HRTF.
func (d *OutputDevice) EnumerateSoftHRTFs() ([]string, error) {
	return enumerateSoftHRTFs(d.alto, d.exts, d.dev)
}

// SoftHRTFStatus reports the device's current HRTF mode. Requires
// ALC_SOFT_HRTF.
func (d *OutputDevice) SoftHRTFStatus() (SoftHRTFStatus, error) {
	return softHRTFStatus(d.alto, d.exts, d.dev)
}

// Close releases the native device. It runs at most once; failure to
// close cannot propagate from a cleanup path, so it is forwarded to the
// Alto's error handler instead.
func (d *OutputDevice) Close() {
	d.closeOnce.Do(func() {
		d.alto.api.CloseDevice(d.dev)
		if err := d.alto.pollError(d.dev); err != nil {
			d.alto.report(fmt.Errorf("alcCloseDevice %q: %w", d.spec, err))
		}
	})
}

// Shared implementations of the Device surface. Output and loopback
// devices differ only in which cache and handle they pass in.

func deviceConnected(a *Alto, exts *ext.Cache, dev uintptr) (bool, error) {
	dc, err := exts.Disconnect()
	if err != nil {
		return false, err
	}
	param, err := dc.Connected.Get()
	if err != nil {
		return false, err
	}
	var connected int32
	a.api.GetIntegerv(dev, param, 1, &connected)
	if err := a.pollError(dev); err != nil {
		return false, err
	}
	return connected == sys.True, nil
}

func enumerateSoftHRTFs(a *Alto, exts *ext.Cache, dev uintptr) ([]string, error) {
	ash, err := exts.SoftHRTF()
	if err != nil {
		return nil, err
	}
	numParam, err := ash.NumHRTFSpecifiers.Get()
	if err != nil {
		return nil, err
	}
	specParam, err := ash.HRTFSpecifier.Get()
	if err != nil {
		return nil, err
	}
	getStringi, err := ash.GetStringi.Get()
	if err != nil {
		return nil, err
	}

	var num int32
	a.api.GetIntegerv(dev, numParam, 1, &num)
	if err := a.pollError(dev); err != nil {
		return nil, err
	}

	specs := make([]string, 0, num)
	for i := int32(0); i < num; i++ {
		p := getStringi(dev, specParam, i)
		spec := sys.GoString(p)
		if err := a.pollError(dev); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func softHRTFStatus(a *Alto, exts *ext.Cache, dev uintptr) (SoftHRTFStatus, error) {
	ash, err := exts.SoftHRTF()
	if err != nil {
		return SoftHRTFStatus{}, err
	}
	statusParam, err := ash.HRTFStatus.Get()
	if err != nil {
		return SoftHRTFStatus{}, err
	}

	var status int32
	a.api.GetIntegerv(dev, statusParam, 1, &status)
	if err := a.pollError(dev); err != nil {
		return SoftHRTFStatus{}, err
	}
	return mapHRTFStatus(ash, status)
}
