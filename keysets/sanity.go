package keysets

import (
	"github.com/bitshash/smharness/hashsurface"
	"github.com/bitshash/smharness/rng"
)

// SanityResult reports the three properties the Sanity sub-test checks
// (spec §4.3 "Sanity").
type SanityResult struct {
	Repeatable      bool // same key+seed twice => identical hash
	SeedSensitive   bool // different seeds => overwhelmingly different hash
	AppendedZeroes  bool // extending a key with extra bytes changes the hash
}

// Pass reports whether all three properties held.
func (r SanityResult) Pass() bool {
	return r.Repeatable && r.SeedSensitive && r.AppendedZeroes
}

// Sanity runs the Sanity sub-test against a validated descriptor, using r
// as its entropy source.
func Sanity(d *hashsurface.Descriptor, r *rng.RNG) SanityResult {
	var result SanityResult

	result.Repeatable = true
	result.SeedSensitive = true
	result.AppendedZeroes = true

	for trial := 0; trial < 1000; trial++ {
		keyLen := 1 + r.Intn(32)
		key := r.Bytes(keyLen)
		seed := r.Blob(d.SeedBits)

		h1 := d.Compute(key, seed)
		h2 := d.Compute(key, seed)
		if !h1.Equal(h2) {
			result.Repeatable = false
		}

		otherSeed := r.Blob(d.SeedBits)
		h3 := d.Compute(key, otherSeed)
		if h1.Equal(h3) && !seed.Equal(otherSeed) {
			result.SeedSensitive = false
		}

		extended := append(append([]byte{}, key...), r.Bytes(1+r.Intn(8))...)
		h4 := d.Compute(extended, seed)
		if h4.Equal(h1) {
			result.AppendedZeroes = false
		}
	}

	return result
}
