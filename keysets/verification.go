// Package keysets implements the harness's structured keyset generators
// (spec §4.3): Cyclic, TwoBytes, Sparse, Combination, Windowed, Text,
// Repeated-Char, Differential, Seed, Avalanche, BIC, plus the Verification
// and Sanity contracts every descriptor must satisfy before any other
// sub-test runs.
package keysets

import (
	"encoding/binary"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
)

// CanonicalKeys yields the 255 canonical verification keys: [0], [0,1],
// [0,1,2], ..., [0..254] - key of length k+1 contains bytes 0..k
// (spec §6 "Canonical keyset for verification").
func CanonicalKeys(yield func(key []byte) bool) {
	for length := 1; length <= 255; length++ {
		key := make([]byte, length)
		for i := range key {
			key[i] = byte(i)
		}
		if !yield(key) {
			return
		}
	}
}

// Verify computes the descriptor's verification constant per spec §6 and
// reports whether it matches the pinned VerificationConstant. This is the
// first gate the Orchestrator runs; a mismatch invalidates the descriptor
// (spec §4.3 "Verification", §4.5 step 2).
func Verify(d *hashsurface.Descriptor) (computed uint32, ok bool) {
	computed = ComputeVerificationConstant(d)
	return computed, computed == d.VerificationConstant
}

// ComputeVerificationConstant implements the canonical reduction: each
// canonical key of length k+1 is hashed with seed = integer(256-k)
// interpreted in the hash's seed width; all 255 outputs are XOR-folded into
// one accumulator of hash_bits/8 bytes; that accumulator is itself hashed
// with seed 0; the first 4 bytes of the final output, little-endian, are
// the verification constant. This reduction must be preserved bit-exactly
// by any reimplementation (spec §9 "Verification XOR-folding").
func ComputeVerificationConstant(d *hashsurface.Descriptor) uint32 {
	hashBytes := d.HashBits / 8
	accum := make([]byte, hashBytes)

	k := 0
	CanonicalKeys(func(key []byte) bool {
		seedValue := uint64(256 - k)
		seed := seedBlob(d.SeedBits, seedValue)

		out := d.Compute(key, seed).Bytes()
		for i := 0; i < hashBytes && i < len(out); i++ {
			accum[i] ^= out[i]
		}
		k++
		return true
	})

	finalSeed := seedBlob(d.SeedBits, 0)
	final := d.Compute(accum, finalSeed).Bytes()

	if len(final) < 4 {
		// Hashes narrower than 32 bits are not supported by this surface
		// (spec §3: hash_bits in {32,64,128,256}), so this cannot occur for
		// a validated descriptor.
		padded := make([]byte, 4)
		copy(padded, final)
		final = padded
	}
	return binary.LittleEndian.Uint32(final[:4])
}

// seedBlob builds a seed Blob of the given width from an integer, matching
// "seed = integer (256 − k) interpreted in the hash's seed width."
func seedBlob(seedBits int, v uint64) blob.Blob {
	if seedBits <= 64 {
		return blob.FromUint64(seedBits, v)
	}
	low := blob.FromUint64(64, v)
	out := make([]byte, (seedBits+7)/8)
	copy(out, low.Bytes())
	return blob.FromBytes(seedBits, out)
}
