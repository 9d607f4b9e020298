// Package sample defines the in-memory sample frame layouts consumed by
// the device layer. Frame structs are laid out exactly as the native
// library expects interleaved buffers, so slices of them can be handed
// over as raw memory.
package sample

import (
	"unsafe"

	"github.com/shaban/openal/ext"
)

// Sample is a storage type usable inside a frame: 8-bit unsigned,
// 16-bit signed, or 32-bit float.
type Sample interface {
	uint8 | int16 | float32
}

// Frame describes one interleaved sample frame.
type Frame interface {
	// FrameChannels is the number of channels in the frame.
	FrameChannels() int
	// FrameBytes is the size of one frame in bytes.
	FrameBytes() int
}

// LoopbackFrame is a frame layout usable as a loopback render format. It
// reports the native channel-layout and sample-type constants through a
// resolved loopback extension, so an unsupported layout is caught at the
// extension boundary instead of inside a render call.
type LoopbackFrame interface {
	Frame
	LoopbackChannels(*ext.SoftLoopback) (int32, error)
	LoopbackSampleType(*ext.SoftLoopback) (int32, error)
}

// Format selects the wire format of captured samples.
type Format int32

const (
	FormatMono8    Format = 0x1100
	FormatMono16   Format = 0x1101
	FormatStereo8  Format = 0x1102
	FormatStereo16 Format = 0x1103
)

func (f Format) String() string {
	switch f {
	case FormatMono8:
		return "mono 8-bit"
	case FormatMono16:
		return "mono 16-bit"
	case FormatStereo8:
		return "stereo 8-bit"
	case FormatStereo16:
		return "stereo 16-bit"
	default:
		return "unknown format"
	}
}

func sizeOf[S Sample]() int {
	var s S
	return int(unsafe.Sizeof(s))
}

func sampleType[S Sample](sl *ext.SoftLoopback) (int32, error) {
	var s S
	switch any(s).(type) {
	case uint8:
		return sl.TypeU8.Get()
	case int16:
		return sl.TypeI16.Get()
	default:
		return sl.TypeF32.Get()
	}
}

// Mono is a single-channel frame.
type Mono[S Sample] struct {
	Center S
}

func (Mono[S]) FrameChannels() int { return 1 }
func (Mono[S]) FrameBytes() int    { return 1 * sizeOf[S]() }
func (Mono[S]) LoopbackChannels(sl *ext.SoftLoopback) (int32, error) {
	return sl.ChannelsMono.Get()
}
func (Mono[S]) LoopbackSampleType(sl *ext.SoftLoopback) (int32, error) {
	return sampleType[S](sl)
}

// Stereo is a two-channel frame.
type Stereo[S Sample] struct {
	Left, Right S
}

func (Stereo[S]) FrameChannels() int { return 2 }
func (Stereo[S]) FrameBytes() int    { return 2 * sizeOf[S]() }
func (Stereo[S]) LoopbackChannels(sl *ext.SoftLoopback) (int32, error) {
	return sl.ChannelsStereo.Get()
}
func (Stereo[S]) LoopbackSampleType(sl *ext.SoftLoopback) (int32, error) {
	return sampleType[S](sl)
}

// Quad is a four-channel surround frame.
type Quad[S Sample] struct {
	FrontLeft, FrontRight S
	BackLeft, BackRight   S
}

func (Quad[S]) FrameChannels() int { return 4 }
func (Quad[S]) FrameBytes() int    { return 4 * sizeOf[S]() }
func (Quad[S]) LoopbackChannels(sl *ext.SoftLoopback) (int32, error) {
	return sl.ChannelsQuad.Get()
}
func (Quad[S]) LoopbackSampleType(sl *ext.SoftLoopback) (int32, error) {
	return sampleType[S](sl)
}

// MC51 is a 5.1 surround frame.
type MC51[S Sample] struct {
	FrontLeft, FrontRight S
	FrontCenter           S
	LowFrequency          S
	BackLeft, BackRight   S
}

func (MC51[S]) FrameChannels() int { return 6 }
func (MC51[S]) FrameBytes() int    { return 6 * sizeOf[S]() }
func (MC51[S]) LoopbackChannels(sl *ext.SoftLoopback) (int32, error) {
	return sl.Channels51.Get()
}
func (MC51[S]) LoopbackSampleType(sl *ext.SoftLoopback) (int32, error) {
	return sampleType[S](sl)
}

// MC61 is a 6.1 surround frame.
type MC61[S Sample] struct {
	FrontLeft, FrontRight S
	FrontCenter           S
	LowFrequency          S
	BackCenter            S
	SideLeft, SideRight   S
}

func (MC61[S]) FrameChannels() int { return 7 }
func (MC61[S]) FrameBytes() int    { return 7 * sizeOf[S]() }
func (MC61[S]) LoopbackChannels(sl *ext.SoftLoopback) (int32, error) {
	return sl.Channels61.Get()
}
func (MC61[S]) LoopbackSampleType(sl *ext.SoftLoopback) (int32, error) {
	return sampleType[S](sl)
}

// MC71 is a 7.1 surround frame.
type MC71[S Sample] struct {
	FrontLeft, FrontRight S
	FrontCenter           S
	LowFrequency          S
	BackLeft, BackRight   S
	SideLeft, SideRight   S
}

func (MC71[S]) FrameChannels() int { return 8 }
func (MC71[S]) FrameBytes() int    { return 8 * sizeOf[S]() }
func (MC71[S]) LoopbackChannels(sl *ext.SoftLoopback) (int32, error) {
	return sl.Channels71.Get()
}
func (MC71[S]) LoopbackSampleType(sl *ext.SoftLoopback) (int32, error) {
	return sampleType[S](sl)
}
