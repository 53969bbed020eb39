package keysets

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/bitshash/smharness/rng"
)

// DiffSuspect records a delta pattern whose collision rate across trials
// exceeded the chance rate of roughly 2^-hash_bits per trial (spec §4.3
// "Differential").
type DiffSuspect struct {
	Delta      blob.Blob
	Collisions int
	Trials     int
}

// DiffConfig is one (width, max-Hamming-weight) configuration DiffTest runs.
type DiffConfig struct {
	Width     int
	MaxWeight int
}

// diffConfigs are the three configurations, taken verbatim from the
// original harness's RunTests driver (DiffTest<Blob<64>>(hash,5,...),
// <Blob<128>>(hash,4,...), <Blob<256>>(hash,3,...)).
var diffConfigs = []DiffConfig{
	{64, 5},
	{128, 4},
	{256, 3},
}

// DiffConfigs exposes the three (width, max-weight) configurations the
// Diff sub-test runs.
func DiffConfigs() []DiffConfig { return diffConfigs }

// Differential runs DiffTest for one (width, maxWeight) configuration:
// every XOR-delta pattern of Hamming weight 1..maxWeight is applied to
// `trials` random base keys, and any delta that collides on at least one
// trial is reported as a suspect. The fixed seed (100 in the original
// harness) is used for every trial so results are reproducible.
func Differential(d *hashsurface.Descriptor, width, maxWeight, trials int, seed blob.Blob, r *rng.RNG) []DiffSuspect {
	var suspects []DiffSuspect
	byteLen := (width + 7) / 8

	forEachDeltaUpToWeight(width, maxWeight, func(delta blob.Blob) bool {
		collisions := 0
		for t := 0; t < trials; t++ {
			base := r.Bytes(byteLen)
			other := make([]byte, byteLen)
			copy(other, base)
			xorInto(other, delta.Bytes())

			h1 := d.Compute(base, seed)
			h2 := d.Compute(other, seed)
			if h1.Equal(h2) {
				collisions++
			}
		}
		if collisions >= 1 {
			suspects = append(suspects, DiffSuspect{Delta: delta, Collisions: collisions, Trials: trials})
		}
		return true
	})

	return suspects
}

func xorInto(dst, src []byte) {
	for i := range dst {
		if i < len(src) {
			dst[i] ^= src[i]
		}
	}
}

// forEachDeltaUpToWeight yields every width-bit Blob with Hamming weight in
// [1, maxWeight], built from increasing combinations of set bit positions.
func forEachDeltaUpToWeight(width, maxWeight int, yield func(delta blob.Blob) bool) {
	for weight := 1; weight <= maxWeight; weight++ {
		if !forEachCombination(width, weight, func(positions []int) bool {
			d := blob.New(width)
			for _, p := range positions {
				d = d.SetBit(p, 1)
			}
			return yield(d)
		}) {
			return
		}
	}
}

// forEachCombination yields every increasing-index combination of `weight`
// positions drawn from [0, n), stopping early if yield returns false.
func forEachCombination(n, weight int, yield func(positions []int) bool) bool {
	positions := make([]int, weight)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == weight {
			return yield(positions)
		}
		for i := start; i < n; i++ {
			positions[depth] = i
			if !rec(i+1, depth+1) {
				return false
			}
		}
		return true
	}
	return rec(0, 0)
}
