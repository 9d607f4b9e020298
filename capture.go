package openal

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/shaban/openal/sys"
)

// CaptureDevice is an audio input from which sample data can be read,
// typically an input endpoint reported by the operating system. It is a
// narrower resource than an output device: no contexts and no
// device-level extension cache.
type CaptureDevice struct {
	alto *Alto
	spec string
	dev  uintptr

	closeOnce sync.Once
}

// Alto returns the instance this device was opened from.
func (c *CaptureDevice) Alto() *Alto { return c.alto }

// Specifier returns the string this device was opened with.
func (c *CaptureDevice) Specifier() string { return c.spec }

// Raw returns the native device handle.
func (c *CaptureDevice) Raw() uintptr { return c.dev }

// Equal reports raw-handle identity.
func (c *CaptureDevice) Equal(other *CaptureDevice) bool {
	return other != nil && c.dev == other.dev
}

// Start begins capturing into the device's ring buffer.
func (c *CaptureDevice) Start() error {
	c.alto.api.CaptureStart(c.dev)
	return c.alto.pollError(c.dev)
}

// Stop stops capturing. Samples already buffered remain readable.
func (c *CaptureDevice) Stop() error {
	c.alto.api.CaptureStop(c.dev)
	return c.alto.pollError(c.dev)
}

// SamplesAvailable reports how many captured sample frames are buffered.
func (c *CaptureDevice) SamplesAvailable() (int32, error) {
	var n int32
	c.alto.api.GetIntegerv(c.dev, sys.CaptureSamples, 1, &n)
	if err := c.alto.pollError(c.dev); err != nil {
		return 0, err
	}
	return n, nil
}

// CaptureSamples reads captured frames into buf, which must be large
// enough to hold them in the device's wire format. Reading more
// frames than SamplesAvailable reports is a native error.
func (c *CaptureDevice) CaptureSamples(buf []byte, frames int32) error {
	if frames == 0 {
		return nil
	}
	if len(buf) == 0 {
		return ErrInvalidValue
	}
	c.alto.api.CaptureSamples(c.dev, unsafe.Pointer(&buf[0]), frames)
	return c.alto.pollError(c.dev)
}

// Close releases the native device. It runs at most once; a failure is
// forwarded to the Alto's error handler.
func (c *CaptureDevice) Close() {
	c.closeOnce.Do(func() {
		c.alto.api.CaptureCloseDevice(c.dev)
		if err := c.alto.pollError(c.dev); err != nil {
			c.alto.report(fmt.Errorf("alcCaptureCloseDevice %q: %w", c.spec, err))
		}
	})
}
