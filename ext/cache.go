package ext

import (
	"sync"

	"github.com/shaban/openal/sys"
)

// entry is one memoized resolution outcome. Success and failure are both
// final: a descriptor never changes after it is first built.
type entry[T any] struct {
	desc *T
	err  error
}

func resolve[T any](api *sys.API, dev uintptr, name string, build func(resolver) *T) *entry[T] {
	if !api.IsExtensionPresent(dev, name) {
		return &entry[T]{err: &NotPresentError{Ext: name}}
	}
	return &entry[T]{desc: build(resolver{api: api, dev: dev, ext: name})}
}

// Cache is the per-device extension table. Lookups are serialized by a
// table-wide mutex; resolution is rare next to steady-state audio calls,
// so contention is not a concern.
type Cache struct {
	api *sys.API
	dev uintptr

	mu              sync.Mutex
	dedicated       *entry[Dedicated]
	disconnect      *entry[Disconnect]
	efx             *entry[EFX]
	softHRTF        *entry[SoftHRTF]
	softPauseDevice *entry[SoftPauseDevice]
}

// NewCache builds an empty extension table scoped to one device handle.
func NewCache(api *sys.API, dev uintptr) *Cache {
	return &Cache{api: api, dev: dev}
}

// Dedicated resolves ALC_EXT_DEDICATED for this device.
func (c *Cache) Dedicated() (*Dedicated, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dedicated == nil {
		c.dedicated = resolve(c.api, c.dev, "ALC_EXT_DEDICATED", newDedicated)
	}
	return c.dedicated.desc, c.dedicated.err
}

// Disconnect resolves ALC_EXT_DISCONNECT for this device.
func (c *Cache) Disconnect() (*Disconnect, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disconnect == nil {
		c.disconnect = resolve(c.api, c.dev, "ALC_EXT_DISCONNECT", newDisconnect)
	}
	return c.disconnect.desc, c.disconnect.err
}

// EFX resolves ALC_EXT_EFX for this device.
func (c *Cache) EFX() (*EFX, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.efx == nil {
		c.efx = resolve(c.api, c.dev, "ALC_EXT_EFX", newEFX)
	}
	return c.efx.desc, c.efx.err
}

// SoftHRTF resolves ALC_SOFT_HRTF for this device.
func (c *Cache) SoftHRTF() (*SoftHRTF, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.softHRTF == nil {
		c.softHRTF = resolve(c.api, c.dev, "ALC_SOFT_HRTF", newSoftHRTF)
	}
	return c.softHRTF.desc, c.softHRTF.err
}

// SoftPauseDevice resolves ALC_SOFT_pause_device for this device.
func (c *Cache) SoftPauseDevice() (*SoftPauseDevice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.softPauseDevice == nil {
		c.softPauseDevice = resolve(c.api, c.dev, "ALC_SOFT_pause_device", newSoftPauseDevice)
	}
	return c.softPauseDevice.desc, c.softPauseDevice.err
}

// Present reports whether the identified extension resolved for this
// device. Presence is the memoized resolution outcome, not a fresh query.
func (c *Cache) Present(a Alc) bool {
	var err error
	switch a {
	case AlcDedicated:
		_, err = c.Dedicated()
	case AlcDisconnect:
		_, err = c.Disconnect()
	case AlcEFX:
		_, err = c.EFX()
	case AlcSoftHRTF:
		_, err = c.SoftHRTF()
	case AlcSoftPauseDevice:
		_, err = c.SoftPauseDevice()
	default:
		return false
	}
	return err == nil
}

// NullCache is the global extension table, usable before any device
// exists. It resolves against the no-device namespace.
type NullCache struct {
	api *sys.API

	mu           sync.Mutex
	enumerateAll *entry[EnumerateAll]
	softLoopback *entry[SoftLoopback]
}

// NewNullCache builds the global extension table for a loaded API.
func NewNullCache(api *sys.API) *NullCache {
	return &NullCache{api: api}
}

// EnumerateAll resolves ALC_ENUMERATE_ALL_EXT.
func (c *NullCache) EnumerateAll() (*EnumerateAll, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enumerateAll == nil {
		c.enumerateAll = resolve(c.api, 0, "ALC_ENUMERATE_ALL_EXT", newEnumerateAll)
	}
	return c.enumerateAll.desc, c.enumerateAll.err
}

// SoftLoopback resolves ALC_SOFT_loopback.
func (c *NullCache) SoftLoopback() (*SoftLoopback, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.softLoopback == nil {
		c.softLoopback = resolve(c.api, 0, "ALC_SOFT_loopback", newSoftLoopback)
	}
	return c.softLoopback.desc, c.softLoopback.err
}
