package openal

import (
	"fmt"

	"github.com/shaban/openal/ext"
)

// SoftHRTFStatusKind names the HRTF modes a device can report.
type SoftHRTFStatusKind int

const (
	HRTFDisabled SoftHRTFStatusKind = iota
	HRTFEnabled
	HRTFDenied
	HRTFRequired
	HRTFHeadphonesDetected
	HRTFUnsupportedFormat
	// HRTFUnknown covers codes this binding does not know about;
	// inspect SoftHRTFStatus.Code for the raw value.
	HRTFUnknown
)

func (k SoftHRTFStatusKind) String() string {
	switch k {
	case HRTFDisabled:
		return "disabled"
	case HRTFEnabled:
		return "enabled"
	case HRTFDenied:
		return "denied"
	case HRTFRequired:
		return "required"
	case HRTFHeadphonesDetected:
		return "headphones detected"
	case HRTFUnsupportedFormat:
		return "unsupported format"
	default:
		return "unknown"
	}
}

// SoftHRTFStatus is a device's current HRTF mode. Code carries the raw
// native status value, which is the only information available when
// Kind is HRTFUnknown.
type SoftHRTFStatus struct {
	Kind SoftHRTFStatusKind
	Code int32
}

func (s SoftHRTFStatus) String() string {
	if s.Kind == HRTFUnknown {
		return fmt.Sprintf("hrtf status unknown (0x%X)", s.Code)
	}
	return "hrtf " + s.Kind.String()
}

// mapHRTFStatus matches a raw status code against the extension's
// resolved status constants. Every constant consulted is individually
// fallible; an unmatched code maps to HRTFUnknown rather than an error,
// keeping forward compatibility with undocumented codes.
func mapHRTFStatus(ash *ext.SoftHRTF, code int32) (SoftHRTFStatus, error) {
	known := []struct {
		e    ext.Enum
		kind SoftHRTFStatusKind
	}{
		{ash.HRTFDisabled, HRTFDisabled},
		{ash.HRTFEnabled, HRTFEnabled},
		{ash.HRTFDenied, HRTFDenied},
		{ash.HRTFRequired, HRTFRequired},
		{ash.HRTFHeadphonesDetected, HRTFHeadphonesDetected},
		{ash.HRTFUnsupportedFormat, HRTFUnsupportedFormat},
	}
	for _, k := range known {
		v, err := k.e.Get()
		if err != nil {
			return SoftHRTFStatus{}, err
		}
		if v == code {
			return SoftHRTFStatus{Kind: k.kind, Code: code}, nil
		}
	}
	return SoftHRTFStatus{Kind: HRTFUnknown, Code: code}, nil
}
