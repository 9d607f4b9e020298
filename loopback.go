package openal

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/shaban/openal/ext"
	"github.com/shaban/openal/sample"
	"github.com/shaban/openal/sys"
)

// LoopbackDevice renders F-shaped frames into caller-supplied buffers
// instead of a physical output. Provided by ALC_SOFT_loopback; opening
// one fails fast when the extension is absent.
type LoopbackDevice[F sample.LoopbackFrame] struct {
	alto *Alto
	spec string
	dev  uintptr
	exts *ext.Cache

	closeOnce sync.Once
}

// Alto returns the instance this device was opened from.
func (d *LoopbackDevice[F]) Alto() *Alto { return d.alto }

// Specifier returns the string this device was opened with.
func (d *LoopbackDevice[F]) Specifier() string { return d.spec }

// Raw returns the native device handle.
func (d *LoopbackDevice[F]) Raw() uintptr { return d.dev }

// Equal reports raw-handle identity.
func (d *LoopbackDevice[F]) Equal(other *LoopbackDevice[F]) bool {
	return other != nil && d.dev == other.dev
}

// IsExtensionPresent reports whether a device-level extension resolved
// for this device.
func (d *LoopbackDevice[F]) IsExtensionPresent(a ext.Alc) bool {
	return d.exts.Present(a)
}

// Extensions exposes this device's extension cache.
func (d *LoopbackDevice[F]) Extensions() *ext.Cache { return d.exts }

// Connected always reports true: a loopback device has no physical
// endpoint to lose.
func (d *LoopbackDevice[F]) Connected() (bool, error) { return true, nil }

// EnumerateSoftHRTFs lists the HRTF specifiers supported by this
// device. Requires ALC_SOFT_HRTF.
func (d *LoopbackDevice[F]) EnumerateSoftHRTFs() ([]string, error) {
	return enumerateSoftHRTFs(d.alto, d.exts, d.dev)
}

// SoftHRTFStatus reports the device's current HRTF mode. Requires
// ALC_SOFT_HRTF.
func (d *LoopbackDevice[F]) SoftHRTFStatus() (SoftHRTFStatus, error) {
	return softHRTFStatus(d.alto, d.exts, d.dev)
}

// makeAttrs builds the loopback attribute list. Unlike a physical
// device, frequency and the frame format are mandatory pairs, with the
// format constants reported by the frame kind F.
func (d *LoopbackDevice[F]) makeAttrs(freq int32, attrs *LoopbackAttrs) ([]int32, error) {
	sl, err := d.alto.exts.SoftLoopback()
	if err != nil {
		return nil, err
	}

	var f F
	channels, err := f.LoopbackChannels(sl)
	if err != nil {
		return nil, err
	}
	sampleType, err := f.LoopbackSampleType(sl)
	if err != nil {
		return nil, err
	}
	chKey, err := sl.FormatChannels.Get()
	if err != nil {
		return nil, err
	}
	tyKey, err := sl.FormatType.Get()
	if err != nil {
		return nil, err
	}

	v := make([]int32, 0, 15)
	v = append(v, sys.Frequency, freq, chKey, channels, tyKey, sampleType)
	if attrs != nil {
		v = appendSourceHints(v, attrs.MonoSources, attrs.StereoSources)
		v, err = appendHRTFAttrs(v, d.exts, attrs.SoftHRTF, attrs.SoftHRTFID)
		if err != nil {
			return nil, err
		}
	}
	return append(v, 0), nil
}

// NewContext creates a rendering context on this device. freq is the
// render sampling rate; the frame format comes from F.
func (d *LoopbackDevice[F]) NewContext(freq int32, attrs *LoopbackAttrs) (*Context, error) {
	attrsVec, err := d.makeAttrs(freq, attrs)
	if err != nil {
		return nil, err
	}
	return newContext(d.alto, d, d.dev, attrsVec)
}

// SoftReset resets this device in place with new attributes. Requires
// ALC_SOFT_HRTF.
func (d *LoopbackDevice[F]) SoftReset(freq int32, attrs *LoopbackAttrs) error {
	ash, err := d.exts.SoftHRTF()
	if err != nil {
		return err
	}
	reset, err := ash.ResetDevice.Get()
	if err != nil {
		return err
	}
	attrsVec, err := d.makeAttrs(freq, attrs)
	if err != nil {
		return err
	}
	reset(d.dev, attrsPointer(attrsVec))
	return d.alto.pollError(d.dev)
}

// RenderSamples renders len(buf) frames into buf from whatever context
// is current on this device.
func (d *LoopbackDevice[F]) RenderSamples(buf []F) error {
	if len(buf) == 0 {
		return nil
	}
	sl, err := d.alto.exts.SoftLoopback()
	if err != nil {
		return err
	}
	render, err := sl.RenderSamples.Get()
	if err != nil {
		return err
	}
	render(d.dev, unsafe.Pointer(&buf[0]), int32(len(buf)))
	return d.alto.pollError(d.dev)
}

// Close releases the native device. It runs at most once; a failure is
// forwarded to the Alto's error handler.
func (d *LoopbackDevice[F]) Close() {
	d.closeOnce.Do(func() {
		d.alto.api.CloseDevice(d.dev)
		if err := d.alto.pollError(d.dev); err != nil {
			d.alto.report(fmt.Errorf("alcCloseDevice %q: %w", d.spec, err))
		}
	})
}
