package sys

import (
	"errors"
	"fmt"
	"os"
)

// OPENAL_LIB overrides the platform search list with an explicit path.
const libEnvVar = "OPENAL_LIB"

// LoadDefault loads the platform's OpenAL implementation, preferring
// OpenAL Soft where the search list distinguishes it.
func LoadDefault() (*API, error) {
	if path := os.Getenv(libEnvVar); path != "" {
		return Load(path)
	}

	var errs []error
	for _, name := range defaultLibraryNames {
		api, err := Load(name)
		if err == nil {
			return api, nil
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("sys: no OpenAL implementation found: %w", errors.Join(errs...))
}

// Load loads a specific OpenAL implementation by path or library name.
func Load(path string) (*API, error) {
	lib, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("sys: load %s: %w", path, err)
	}
	return bindAPI(lib)
}
