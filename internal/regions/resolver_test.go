package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC",
}

func TestResolve_CoversAllStatesAndDC(t *testing.T) {
	for _, state := range allStates {
		slug, ok := Resolve("unitedStates", state)
		assert.True(t, ok, "state %s must resolve", state)
		assert.NotEmpty(t, slug, "state %s must map to a region", state)
		assert.NotEqual(t, International, slug, "state %s must not map to international", state)
	}
}

func TestResolve_TableIsAPartition(t *testing.T) {
	// Every state appears in exactly one region, and the union covers
	// exactly the 50 states plus DC.
	seen := make(map[string]Slug)
	for _, r := range All {
		for _, st := range r.States {
			prev, dup := seen[st]
			require.False(t, dup, "state %s mapped to both %s and %s", st, prev, r.Slug)
			seen[st] = r.Slug
		}
	}
	assert.Len(t, seen, 51)
	for _, st := range allStates {
		assert.Contains(t, seen, st)
	}
}

func TestResolve_International(t *testing.T) {
	for _, state := range []string{"", "CA", "ZZ"} {
		slug, ok := Resolve("international", state)
		assert.True(t, ok)
		assert.Equal(t, International, slug)
	}
}

func TestResolve_UnknownInput(t *testing.T) {
	_, ok := Resolve("unitedStates", "ZZ")
	assert.False(t, ok)

	_, ok = Resolve("unitedStates", "")
	assert.False(t, ok)

	_, ok = Resolve("other", "CA")
	assert.False(t, ok)

	_, ok = Resolve("", "")
	assert.False(t, ok)
}
