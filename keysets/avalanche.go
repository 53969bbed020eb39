package keysets

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/rng"
)

// AvalancheSeed is the fixed RNG seed the original harness uses for the
// Avalanche sub-test.
const AvalancheSeed = 923145681

// AvalancheKeyBits is the key width Avalanche tests at: the hash's own
// width. Avalanche runs once, at this single key width; it does not sweep a
// ladder of key lengths.
func AvalancheKeyBits(hashBits int) int { return hashBits }

// AvalancheReps is the number of (key, flipped-bit) trials run: 32,000,000
// / hash_bits, so wider hashes get proportionally fewer but still
// statistically meaningful trials.
func AvalancheReps(hashBits int) int { return 32000000 / hashBits }

// BitFlipSamples yields `reps` trials of a random (seed, key) pair, and for
// each trial, every bit position across the combined seed||key input in
// turn: the seed/key pair with exactly that one bit flipped. inputBit is
// indexed over [0, seedBits+keyBits) - positions below seedBits flip the
// seed, the rest flip the key - so every input bit of both the seed and
// the key is exercised, not just the key (spec §4.3 "Avalanche": the
// avalanche matrix covers seed_bits+key_bits rows). Both Avalanche
// (per-bit flip bias) and BIC (pairwise output independence) are built
// from this same sampling shape; only the downstream statistic differs.
func BitFlipSamples(seedBits, keyBits, reps int, r *rng.RNG, yield func(seed, key, flippedSeed, flippedKey blob.Blob, inputBit int) bool) {
	totalBits := seedBits + keyBits
	for t := 0; t < reps; t++ {
		seed := r.Blob(seedBits)
		key := r.Blob(keyBits)

		for bit := 0; bit < totalBits; bit++ {
			flippedSeed, flippedKey := seed, key
			if bit < seedBits {
				flippedSeed = seed.FlipBit(bit)
			} else {
				flippedKey = key.FlipBit(bit - seedBits)
			}
			if !yield(seed, key, flippedSeed, flippedKey, bit) {
				return
			}
		}
	}
}
