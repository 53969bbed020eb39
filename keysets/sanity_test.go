package keysets

import (
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/stretchr/testify/assert"
)

func TestSanityPassesForIdentityHash(t *testing.T) {
	d := identityDescriptorForTest()
	r := newTestRNG()

	result := Sanity(d, r)
	assert.True(t, result.Repeatable)
	assert.True(t, result.Pass())
}

func TestSanityCatchesSeedInsensitiveHash(t *testing.T) {
	constant := func(key []byte, seed blob.Blob) blob.Blob {
		return blob.FromUint64(32, 42)
	}
	d := &hashsurface.Descriptor{Name: "constant", HashBits: 32, SeedBits: 32, HashFn: constant}
	r := newTestRNG()

	result := Sanity(d, r)
	assert.False(t, result.SeedSensitive)
	assert.False(t, result.Pass())
}

func TestSanityCatchesKeyInsensitiveHash(t *testing.T) {
	ignoresKey := func(key []byte, seed blob.Blob) blob.Blob {
		return blob.FromUint64(32, seed.Low64())
	}
	d := &hashsurface.Descriptor{Name: "seed-only", HashBits: 32, SeedBits: 32, HashFn: ignoresKey}
	r := newTestRNG()

	result := Sanity(d, r)
	assert.False(t, result.AppendedZeroes)
	assert.False(t, result.Pass())
}
