package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/regions"
)

func TestOptions_KnownHandles(t *testing.T) {
	country, ok := Options("country")
	require.True(t, ok)
	assert.Len(t, country, 2)
	assert.True(t, country[0].Default)
	assert.Equal(t, "unitedStates", country[0].Value)

	duration, ok := Options("duration")
	require.True(t, ok)
	var def string
	for _, opt := range duration {
		if opt.Default {
			def = opt.Value
		}
	}
	assert.Equal(t, "12", def)
}

func TestOptions_UnknownHandle(t *testing.T) {
	_, ok := Options("nonexistentField")
	assert.False(t, ok)
}

func TestOptions_StatesMatchRegionTable(t *testing.T) {
	states, ok := Options("jobState")
	require.True(t, ok)
	require.Len(t, states, 51)

	// Every option offered in the form must resolve to a region.
	for _, opt := range states {
		_, resolved := regions.Resolve("unitedStates", opt.Value)
		assert.True(t, resolved, "state option %s must resolve to a region", opt.Value)
	}
}
