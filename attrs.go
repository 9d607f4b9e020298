package openal

import (
	"github.com/shaban/openal/ext"
	"github.com/shaban/openal/sys"
)

// ContextAttrs are the attributes that may be supplied during context
// creation. nil fields are omitted from the native attribute list rather
// than defaulted.
type ContextAttrs struct {
	// Frequency is the output sampling rate of the audio.
	Frequency *int32
	// Refresh is the refresh rate of the internal mixer, in Hz.
	Refresh *int32
	// MonoSources hints the number of mono sources that will be created.
	MonoSources *int32
	// StereoSources hints the number of stereo sources that will be created.
	StereoSources *int32
	// SoftHRTF selects whether HRTF is desired. Only honored when
	// ALC_SOFT_HRTF resolves for the device.
	SoftHRTF *bool
	// SoftHRTFID is the index of an HRTF specifier as returned by
	// EnumerateSoftHRTFs.
	SoftHRTFID *int32
}

// LoopbackAttrs are the attributes that may be supplied during context
// creation on a loopback device. Frequency and frame format are passed
// separately since loopback contexts require them.
type LoopbackAttrs struct {
	MonoSources   *int32
	StereoSources *int32
	SoftHRTF      *bool
	SoftHRTFID    *int32
}

// Int32 returns a pointer to v, for filling optional attribute fields.
func Int32(v int32) *int32 { return &v }

// Bool returns a pointer to v, for filling optional attribute fields.
func Bool(v bool) *bool { return &v }

// makeContextAttrs flattens attrs into the native wire format: (key,
// value) pairs terminated by a single zero. nil attrs yields nil, which
// crosses the boundary as a null pointer and selects implementation
// defaults. HRTF pairs are emitted only when ALC_SOFT_HRTF resolves.
func makeContextAttrs(exts *ext.Cache, attrs *ContextAttrs) ([]int32, error) {
	if attrs == nil {
		return nil, nil
	}
	v := make([]int32, 0, 13)
	if attrs.Frequency != nil {
		v = append(v, sys.Frequency, *attrs.Frequency)
	}
	if attrs.Refresh != nil {
		v = append(v, sys.Refresh, *attrs.Refresh)
	}
	v = appendSourceHints(v, attrs.MonoSources, attrs.StereoSources)

	var err error
	v, err = appendHRTFAttrs(v, exts, attrs.SoftHRTF, attrs.SoftHRTFID)
	if err != nil {
		return nil, err
	}
	return append(v, 0), nil
}

func appendSourceHints(v []int32, mono, stereo *int32) []int32 {
	if mono != nil {
		v = append(v, sys.MonoSources, *mono)
	}
	if stereo != nil {
		v = append(v, sys.StereoSources, *stereo)
	}
	return v
}

func appendHRTFAttrs(v []int32, exts *ext.Cache, hrtf *bool, hrtfID *int32) ([]int32, error) {
	ash, err := exts.SoftHRTF()
	if err != nil {
		// Without the extension the HRTF fields are silently dropped,
		// matching how absent options are omitted from the list.
		return v, nil
	}
	if hrtf != nil {
		key, err := ash.HRTF.Get()
		if err != nil {
			return nil, err
		}
		val := sys.False
		if *hrtf {
			val = sys.True
		}
		v = append(v, key, val)
	}
	if hrtfID != nil {
		key, err := ash.HRTFID.Get()
		if err != nil {
			return nil, err
		}
		v = append(v, key, *hrtfID)
	}
	return v, nil
}

// attrsPointer hands an attribute list across the native boundary. An
// empty or nil list becomes a null pointer.
func attrsPointer(v []int32) *int32 {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}
