package openal

import (
	"fmt"
	"sync"
)

// Context is a rendering context created from a device. It must not
// outlive the device that produced it. Every operation that changes
// which context is current goes through the Alto's process-wide lock,
// because the native current-context state is global, not per-context.
type Context struct {
	alto *Alto
	dev  Device
	ctx  uintptr

	destroyOnce sync.Once
}

func newContext(a *Alto, dev Device, rawDev uintptr, attrsVec []int32) (*Context, error) {
	a.ctxLock.Lock()
	ctx := a.api.CreateContext(rawDev, attrsPointer(attrsVec))
	err := a.pollError(rawDev)
	a.ctxLock.Unlock()

	if err != nil {
		return nil, err
	}
	if ctx == 0 {
		// Null context without an error code, normalized the same way
		// null device handles are.
		return nil, ErrInvalidContext
	}
	return &Context{alto: a, dev: dev, ctx: ctx}, nil
}

// Device returns the device this context was created from.
func (c *Context) Device() Device { return c.dev }

// Raw returns the native context handle.
func (c *Context) Raw() uintptr { return c.ctx }

// Equal reports raw-handle identity.
func (c *Context) Equal(other *Context) bool {
	return other != nil && c.ctx == other.ctx
}

// MakeCurrent makes this context the process-wide current context.
func (c *Context) MakeCurrent() error {
	c.alto.ctxLock.Lock()
	defer c.alto.ctxLock.Unlock()
	c.alto.api.MakeContextCurrent(c.ctx)
	return c.alto.pollError(c.dev.Raw())
}

// Process resumes processing on this context.
func (c *Context) Process() error {
	c.alto.api.ProcessContext(c.ctx)
	return c.alto.pollError(c.dev.Raw())
}

// Suspend suspends processing on this context.
func (c *Context) Suspend() error {
	c.alto.api.SuspendContext(c.ctx)
	return c.alto.pollError(c.dev.Raw())
}

// Destroy releases the native context. It runs at most once; a failure
// is forwarded to the Alto's error handler because a cleanup path
// cannot propagate it. The context must not be current when destroyed.
func (c *Context) Destroy() {
	c.destroyOnce.Do(func() {
		c.alto.ctxLock.Lock()
		c.alto.api.DestroyContext(c.ctx)
		err := c.alto.pollError(c.dev.Raw())
		c.alto.ctxLock.Unlock()
		if err != nil {
			c.alto.report(fmt.Errorf("alcDestroyContext: %w", err))
		}
	})
}
