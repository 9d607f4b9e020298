package openal

import (
	"fmt"
	"sync"
)

// SoftPauseLock keeps a device paused for as long as it is held. Locks
// are reentrant: any number may be outstanding on one device, and only
// the first pauses the native device while only the last release
// resumes it. Requires ALC_SOFT_pause_device.
type SoftPauseLock struct {
	dev         *OutputDevice
	releaseOnce sync.Once
}

func newSoftPauseLock(d *OutputDevice) (*SoftPauseLock, error) {
	sp, err := d.exts.SoftPauseDevice()
	if err != nil {
		return nil, err
	}
	pause, err := sp.DevicePause.Get()
	if err != nil {
		return nil, err
	}
	// The resume entry point is needed at release time; resolving it up
	// front means a lock is never constructed that cannot be released.
	if _, err := sp.DeviceResume.Get(); err != nil {
		return nil, err
	}

	if d.pauseRC.Add(1) == 1 {
		pause(d.dev)
		if err := d.alto.pollError(d.dev); err != nil {
			// Roll back so no pause is left dangling on failure.
			d.pauseRC.Add(-1)
			return nil, err
		}
	}
	return &SoftPauseLock{dev: d}, nil
}

// Device returns the paused device, so ordinary device operations stay
// usable while the lock is held.
func (l *SoftPauseLock) Device() *OutputDevice { return l.dev }

// Release drops this lock. Output resumes once the last outstanding
// lock on the device is released. Release runs at most once; a native
// resume failure is forwarded to the Alto's error handler because a
// cleanup path cannot propagate it.
func (l *SoftPauseLock) Release() {
	l.releaseOnce.Do(func() {
		d := l.dev
		if d.pauseRC.Add(-1) != 0 {
			return
		}
		sp, err := d.exts.SoftPauseDevice()
		if err != nil {
			// Construction proved the extension resolves; the cache
			// guarantees it still does.
			d.alto.report(err)
			return
		}
		resume, err := sp.DeviceResume.Get()
		if err != nil {
			d.alto.report(err)
			return
		}
		resume(d.dev)
		if err := d.alto.pollError(d.dev); err != nil {
			d.alto.report(fmt.Errorf("alcDeviceResumeSOFT %q: %w", d.spec, err))
		}
	})
}
