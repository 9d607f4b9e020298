package openal

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shaban/openal/sys"
)

// AlcError is a native error code observed through the post-call error
// poll. It compares by code, so errors.Is(err, ErrInvalidDevice) works.
type AlcError int32

const (
	ErrInvalidDevice  AlcError = AlcError(sys.InvalidDevice)
	ErrInvalidContext AlcError = AlcError(sys.InvalidContext)
	ErrInvalidEnum    AlcError = AlcError(sys.InvalidEnum)
	ErrInvalidValue   AlcError = AlcError(sys.InvalidValue)
	ErrOutOfMemory    AlcError = AlcError(sys.OutOfMemory)
)

func (e AlcError) Error() string {
	switch e {
	case ErrInvalidDevice:
		return "openal: invalid device"
	case ErrInvalidContext:
		return "openal: invalid context"
	case ErrInvalidEnum:
		return "openal: invalid enum"
	case ErrInvalidValue:
		return "openal: invalid value"
	case ErrOutOfMemory:
		return "openal: out of memory"
	default:
		return fmt.Sprintf("openal: alc error 0x%X", int32(e))
	}
}

// ErrUnsupportedVersion is returned at load time when the implementation
// does not report at least ALC 1.1.
var ErrUnsupportedVersion = errors.New("openal: implementation does not support alc 1.1")

// ErrorHandler receives failures that occur on guaranteed-cleanup paths
// (device close, pause resume, context destroy) and therefore cannot be
// returned to a caller.
type ErrorHandler interface {
	HandleError(error)
}

// HandlerFunc adapts a plain function to an ErrorHandler.
type HandlerFunc func(error)

// HandleError implements ErrorHandler.
func (f HandlerFunc) HandleError(err error) { f(err) }

// DefaultErrorHandler reports teardown failures through slog.
type DefaultErrorHandler struct{}

// HandleError implements ErrorHandler.
func (DefaultErrorHandler) HandleError(err error) {
	slog.Error("openal teardown failure", "error", err)
}

// PanicErrorHandler panics on any error (useful during development).
type PanicErrorHandler struct{}

// HandleError implements ErrorHandler by panicking.
func (PanicErrorHandler) HandleError(err error) {
	panic(fmt.Sprintf("openal teardown failure: %v", err))
}
