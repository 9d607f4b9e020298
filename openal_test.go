package openal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaban/openal/sys"
)

func TestVersionCheck(t *testing.T) {
	cases := []struct {
		name         string
		major, minor int32
		ok           bool
	}{
		{"1.0 rejected", 1, 0, false},
		{"1.1 accepted", 1, 1, true},
		{"1.19 accepted", 1, 19, true},
		{"2.3 accepted", 2, 3, true},
		{"0.9 rejected", 0, 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStub()
			s.integers[sys.MajorVersion] = tc.major
			s.integers[sys.MinorVersion] = tc.minor

			a, err := newAlto(s.API())
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, a)
			} else {
				require.ErrorIs(t, err, ErrUnsupportedVersion)
			}
		})
	}
}

func TestDefaultOutputStandardSpecifier(t *testing.T) {
	s := newStub()
	s.setString(sys.DefaultDeviceSpecifier, []byte("Built-in Output\x00"))

	got, err := s.alto().DefaultOutput()
	require.NoError(t, err)
	assert.Equal(t, "Built-in Output", got)
}

func TestDefaultOutputPrefersEnumerateAll(t *testing.T) {
	s := newStub()
	s.exts["ALC_ENUMERATE_ALL_EXT"] = true
	s.enums["ALC_DEFAULT_ALL_DEVICES_SPECIFIER"] = 0x1012
	s.enums["ALC_ALL_DEVICES_SPECIFIER"] = 0x1013
	s.setString(0x1012, []byte("All Devices Default\x00"))
	s.setString(sys.DefaultDeviceSpecifier, []byte("plain default\x00"))

	got, err := s.alto().DefaultOutput()
	require.NoError(t, err)
	assert.Equal(t, "All Devices Default", got)
}

func TestDefaultOutputErrorAfterQueryWins(t *testing.T) {
	// A string came back, but the post-call poll reports a failure; the
	// poll is authoritative.
	s := newStub()
	s.setString(sys.DefaultDeviceSpecifier, []byte("ghost\x00"))
	a := s.alto()
	s.queueError(sys.InvalidValue)

	_, err := a.DefaultOutput()
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestDefaultCapture(t *testing.T) {
	s := newStub()
	s.setString(sys.CaptureDefaultDeviceSpecifier, []byte("Built-in Mic\x00"))

	got, err := s.alto().DefaultCapture()
	require.NoError(t, err)
	assert.Equal(t, "Built-in Mic", got)
}

func TestEnumerateOutputs(t *testing.T) {
	s := newStub()
	s.setString(sys.DeviceSpecifier, []byte("Speakers\x00Headphones\x00HDMI Out\x00\x00"))

	got, err := s.alto().EnumerateOutputs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Speakers", "Headphones", "HDMI Out"}, got)
}

func TestEnumerateOutputsPrefersEnumerateAll(t *testing.T) {
	s := newStub()
	s.exts["ALC_ENUMERATE_ALL_EXT"] = true
	s.enums["ALC_DEFAULT_ALL_DEVICES_SPECIFIER"] = 0x1012
	s.enums["ALC_ALL_DEVICES_SPECIFIER"] = 0x1013
	s.setString(0x1013, []byte("A\x00BC\x00\x00"))
	s.setString(sys.DeviceSpecifier, []byte("wrong\x00\x00"))

	got, err := s.alto().EnumerateOutputs()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "BC"}, got)
}

func TestEnumerateCapturesEmpty(t *testing.T) {
	s := newStub()
	s.setString(sys.CaptureDeviceSpecifier, []byte{0, 0})

	got, err := s.alto().EnumerateCaptures()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenBySpecifier(t *testing.T) {
	s := newStub()
	var opened string
	s.openDevice = func(spec string) uintptr {
		opened = spec
		return 0xD1CE
	}

	dev, err := s.alto().Open("USB Interface")
	require.NoError(t, err)
	assert.Equal(t, "USB Interface", opened)
	assert.Equal(t, "USB Interface", dev.Specifier())
	assert.Equal(t, uintptr(0xD1CE), dev.Raw())
}

func TestOpenDefaultResolvesSpecifierFirst(t *testing.T) {
	s := newStub()
	s.setString(sys.DefaultDeviceSpecifier, []byte("Built-in Output\x00"))
	var opened string
	s.openDevice = func(spec string) uintptr {
		opened = spec
		return 0xD1CE
	}

	dev, err := s.alto().Open("")
	require.NoError(t, err)
	assert.Equal(t, "Built-in Output", opened)
	assert.Equal(t, "Built-in Output", dev.Specifier())
}

func TestOpenUnknownSpecifierIsInvalidDevice(t *testing.T) {
	// Null handle without an error code still fails as invalid device.
	s := newStub()
	s.openDevice = func(string) uintptr { return 0 }

	_, err := s.alto().Open("No Such Device")
	require.ErrorIs(t, err, ErrInvalidDevice)
}

func TestOpenSurfacesNativeError(t *testing.T) {
	s := newStub()
	s.openDevice = func(string) uintptr { return 0 }
	a := s.alto()
	s.queueError(sys.OutOfMemory)

	_, err := a.Open("Speakers")
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestDeviceEqualityIsHandleIdentity(t *testing.T) {
	s := newStub()
	a := s.alto()

	d1, err := a.Open("Speakers")
	require.NoError(t, err)
	d2, err := a.Open("Speakers (again)")
	require.NoError(t, err)

	// The stub hands out the same native handle for both opens, so they
	// are the same device despite differing specifiers.
	assert.True(t, d1.Equal(d2))
	assert.False(t, d1.Equal(nil))
}
