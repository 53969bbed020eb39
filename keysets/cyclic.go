package keysets

import "github.com/bitshash/smharness/rng"

// CyclicSeed, CyclicCycleLen and CyclicCount are the literal parameters the
// original harness uses for the Cyclic sub-test: a fixed RNG seed, an
// 8-byte repeating cycle, and 10,000,000 keys per offset.
const (
	CyclicSeed     = 910203
	CyclicCycleLen = 8
	CyclicCount    = 10000000
)

// CyclicOffsets are added to hash_bits/8 to produce the five key lengths
// the Cyclic sub-test runs at (offset 0 through 4 bytes).
var CyclicOffsets = []int{0, 1, 2, 3, 4}

// CyclicKeys yields `count` keys of length keyBytes, each built by copying
// a window out of an infinitely repeated cycleLen-byte random cycle (drawn
// fresh for every key) at a random rotation. Hashes that fail to mix
// repeating structure collide far more than chance on this keyset (spec
// §4.3 "Cyclic").
func CyclicKeys(keyBytes, cycleLen, count int, r *rng.RNG, yield func(key []byte) bool) {
	for i := 0; i < count; i++ {
		cycle := r.Bytes(cycleLen)
		rotation := r.Intn(cycleLen)
		key := make([]byte, keyBytes)
		for j := range key {
			key[j] = cycle[(rotation+j)%cycleLen]
		}
		if !yield(key) {
			return
		}
	}
}

// CyclicKeyBytes computes the key length in bytes for a given hash width
// and offset, matching the original harness's size+offset convention.
func CyclicKeyBytes(hashBits, offset int) int {
	return hashBits/8 + offset
}
