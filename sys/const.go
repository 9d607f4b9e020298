package sys

// Standard ALC constants. Extension constants are deliberately absent:
// those are resolved at runtime through alcGetEnumValue (see the ext
// package), matching drivers that expose them under different values.
const (
	False int32 = 0
	True  int32 = 1

	// Context attribute keys.
	Frequency     int32 = 0x1007
	Refresh       int32 = 0x1008
	Sync          int32 = 0x1009
	MonoSources   int32 = 0x1010
	StereoSources int32 = 0x1011

	// Global string and integer properties.
	MajorVersion           int32 = 0x1000
	MinorVersion           int32 = 0x1001
	AttributesSize         int32 = 0x1002
	AllAttributes          int32 = 0x1003
	DefaultDeviceSpecifier int32 = 0x1004
	DeviceSpecifier        int32 = 0x1005
	Extensions             int32 = 0x1006

	// Capture properties.
	CaptureDeviceSpecifier        int32 = 0x310
	CaptureDefaultDeviceSpecifier int32 = 0x311
	CaptureSamples                int32 = 0x312

	// Error codes as reported by alcGetError.
	NoError        int32 = 0
	InvalidDevice  int32 = 0xA001
	InvalidContext int32 = 0xA002
	InvalidEnum    int32 = 0xA003
	InvalidValue   int32 = 0xA004
	OutOfMemory    int32 = 0xA005
)
