package keysets

import "github.com/bitshash/smharness/blob"

// SparseSeed is the fixed RNG seed the original harness uses for the
// Sparse sub-test. The generator itself is exhaustive and seed-free; the
// seed is retained for parity with the original driver's key ordering and
// for any caller that wants a reproducible base seed for the hash under
// test.
const SparseSeed = 8075093

// SparseConfig is one (width-in-bits, max-set-bits) configuration the
// Sparse sub-test runs.
type SparseConfig struct {
	Width int
	K     int
}

// sparseConfigs are the eight configurations from the original harness's
// RunTests driver: SparseKeyTest<32,...>(hash,6,...), <40,...>(hash,6,...),
// <48,...>(hash,5,...), <56,...>(hash,5,...), <64,...>(hash,5,...),
// <96,...>(hash,4,...), <256,...>(hash,3,...), <2048,...>(hash,2,...).
var sparseConfigs = []SparseConfig{
	{32, 6},
	{40, 6},
	{48, 5},
	{56, 5},
	{64, 5},
	{96, 4},
	{256, 3},
	{2048, 2},
}

// SparseConfigs exposes the eight (width, k) configurations.
func SparseConfigs() []SparseConfig { return sparseConfigs }

// SparseKeys yields every width-bit key with at most k bits set starting
// from an all-zero base ("low" keys), and every width-bit key with at most
// k bits cleared starting from an all-one base ("high" keys) - the
// original harness's testLowBits/testHighBits pair. Hashes with weak
// mixing of small Hamming-weight inputs collide far more than chance here
// (spec §4.3 "Sparse").
func SparseKeys(width, k int, yield func(key blob.Blob) bool) {
	ones := blob.New(width).Not()

	ok := true
	forEachDeltaUpToWeightInclZero(width, k, func(delta blob.Blob) bool {
		ok = yield(delta)
		return ok
	})
	if !ok {
		return
	}

	forEachDeltaUpToWeightInclZero(width, k, func(delta blob.Blob) bool {
		return yield(ones.Xor(delta))
	})
}

// forEachDeltaUpToWeightInclZero is forEachDeltaUpToWeight plus the
// all-zero pattern (weight 0), which Sparse includes but Differential does
// not (a zero delta is a no-op collision by definition there).
func forEachDeltaUpToWeightInclZero(width, maxWeight int, yield func(delta blob.Blob) bool) {
	if !yield(blob.New(width)) {
		return
	}
	forEachDeltaUpToWeight(width, maxWeight, yield)
}
