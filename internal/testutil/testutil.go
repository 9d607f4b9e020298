// Package testutil holds helpers for tests that need a real OpenAL
// implementation. Most of the test suite runs against a stub function
// table and never touches hardware; the live tests are opt-in.
package testutil

import (
	"os"
	"testing"
)

// SkipUnlessEnv skips the test unless the given env var equals the wanted value.
func SkipUnlessEnv(t *testing.T, key, want string) {
	t.Helper()
	if os.Getenv(key) != want {
		t.Skipf("skipped: set %s=%s to run", key, want)
	}
}

// SkipWithoutLiveAL skips tests that load a real OpenAL library. Set
// OPENAL_LIVE_TEST=1 (and optionally OPENAL_LIB) to run them.
func SkipWithoutLiveAL(t *testing.T) {
	t.Helper()
	SkipUnlessEnv(t, "OPENAL_LIVE_TEST", "1")
}

// IsCI reports whether running under common CI environments.
func IsCI() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}
