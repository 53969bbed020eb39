package hashsurface_test

import (
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xorHash(key []byte, seed blob.Blob) blob.Blob {
	var v uint32
	for i, b := range key {
		v ^= uint32(b) << (8 * uint(i%4))
	}
	return blob.FromUint64(32, uint64(v)^seed.Low64())
}

func TestValidateRejectsUnsupportedWidths(t *testing.T) {
	d := &hashsurface.Descriptor{Name: "bad", HashBits: 17, SeedBits: 32, HashFn: xorHash}
	err := d.Validate()
	require.Error(t, err)
}

func TestValidateAcceptsKnownWidths(t *testing.T) {
	d := &hashsurface.Descriptor{Name: "identity-32", HashBits: 32, SeedBits: 32, HashFn: xorHash}
	require.NoError(t, d.Validate())
}

func TestHashStateEquivalenceWithoutSeedFn(t *testing.T) {
	d := &hashsurface.Descriptor{Name: "identity-32", HashBits: 32, SeedBits: 32, HashFn: xorHash}
	seed := blob.FromUint64(32, 7)
	key := []byte("hello")

	state := d.PrepareSeed(seed)
	assert.True(t, d.Compute(key, seed).Equal(d.ComputeWithState(key, state)))
}
