package keysets

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/rng"
)

// SeedTestSeed and SeedTestReps are the original harness's literal
// parameters for the Seed sub-test.
const (
	SeedTestSeed = 392612
	SeedTestReps = 2000000
)

// SeedTestKeys are four fixed key strings taken verbatim from the original
// harness. The orchestrator's Seed sub-test holds only the first of them
// constant while sweeping the seed space; the other three are not used.
var SeedTestKeys = []string{
	"The quick brown fox jumps over the lazy dog",
	"",
	"00101100110101101",
	"abcbcddbdebdcaaabaaababaaabacbeedbabseeeeeeeesssssseeeewwwww",
}

// SeedTestSeeds yields `reps` random seeds of the given width for a fixed
// key: the Seed sub-test holds the key constant and varies only the seed,
// checking that different seeds produce a well-distributed, collision-free
// spread of outputs (spec §4.3 "Seed").
func SeedTestSeeds(seedBits, reps int, r *rng.RNG, yield func(seed blob.Blob) bool) {
	for i := 0; i < reps; i++ {
		if !yield(r.Blob(seedBits)) {
			return
		}
	}
}
