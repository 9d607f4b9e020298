package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaban/openal/internal/testutil"
)

func TestLoadMissingLibrary(t *testing.T) {
	_, err := Load("libdoes-not-exist-openal.so.999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libdoes-not-exist-openal.so.999")
}

func TestLoadDefaultLive(t *testing.T) {
	testutil.SkipWithoutLiveAL(t)

	api, err := LoadDefault()
	require.NoError(t, err)
	require.NotNil(t, api.OpenDevice)
	require.NotNil(t, api.GetString)

	// The no-device error state of a fresh implementation is clean.
	assert.Equal(t, NoError, api.GetError(0))

	spec := GoString(api.GetString(0, DefaultDeviceSpecifier))
	t.Logf("default output device: %q", spec)
}
