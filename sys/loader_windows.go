//go:build windows

package sys

import (
	"golang.org/x/sys/windows"
)

var defaultLibraryNames = []string{
	"soft_oal.dll",
	"OpenAL32.dll",
}

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(lib), name)
	if err != nil {
		return 0, err
	}
	return addr, nil
}
