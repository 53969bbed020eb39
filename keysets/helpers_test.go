package keysets

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/bitshash/smharness/rng"
)

// identityHashForTest is a 32-bit hash that only ever looks at the first 4
// key bytes XORed with the seed - deliberately bad, so tests can assert
// that the statistical core actually detects known-bad behavior.
func identityHashForTest(key []byte, seed blob.Blob) blob.Blob {
	var v uint32
	for i := 0; i < 4 && i < len(key); i++ {
		v |= uint32(key[i]) << (8 * uint(i))
	}
	return blob.FromUint64(32, uint64(v)^seed.Low64())
}

func identityDescriptorForTest() *hashsurface.Descriptor {
	return &hashsurface.Descriptor{
		Name:     "identity-32-test",
		HashBits: 32,
		SeedBits: 32,
		HashFn:   identityHashForTest,
	}
}

func newTestRNG() *rng.RNG { return rng.New(910203) }

func rngSeeded(seed int64) *rng.RNG { return rng.New(uint64(seed)) }
