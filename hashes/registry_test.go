package hashes_test

import (
	"testing"

	"github.com/bitshash/smharness/hashes"
	"github.com/bitshash/smharness/keysets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllDescriptorsValidate(t *testing.T) {
	for _, d := range hashes.All {
		require.NoError(t, d.Validate(), d.Name)
	}
}

func TestAllDescriptorsVerify(t *testing.T) {
	for _, d := range hashes.All {
		_, ok := keysets.Verify(d)
		assert.True(t, ok, d.Name)
	}
}

func TestByNameLookup(t *testing.T) {
	d, ok := hashes.ByName("identity-32")
	require.True(t, ok)
	assert.Equal(t, hashes.Identity32, d)

	_, ok = hashes.ByName("does-not-exist")
	assert.False(t, ok)
}

func TestCountMatchesRegisteredDescriptors(t *testing.T) {
	assert.Equal(t, len(hashes.All), hashes.Count())
}
