//go:build darwin || linux || freebsd

package sys

import (
	"runtime"

	"github.com/ebitengine/purego"
)

var defaultLibraryNames = func() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"libopenal.1.dylib",
			"libopenal.dylib",
			"/System/Library/Frameworks/OpenAL.framework/OpenAL",
		}
	}
	return []string{
		"libopenal.so.1",
		"libopenal.so",
	}
}()

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
