// Package hashsurface implements the harness's uniform entry point to hash
// functions of differing output and seed widths (spec §4.1). It is a thin
// adapter: the concrete algorithms are external collaborators (spec §1),
// registered as Descriptors.
package hashsurface

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/errors"
)

// HashFunc computes the hash of key under seed.
type HashFunc func(key []byte, seed blob.Blob) blob.Blob

// SeedFunc prepares an opaque seed-schedule state, amortizing seed setup
// across the millions of calls Avalanche makes under one seed.
type SeedFunc func(seed blob.Blob) any

// HashWithStateFunc computes a hash using a state produced by a SeedFunc.
type HashWithStateFunc func(key []byte, state any) blob.Blob

// supportedHashBits and supportedSeedBits enumerate the widths this surface
// can dispatch on (spec §3: HashDescriptor invariants).
var (
	supportedHashBits = map[int]bool{32: true, 64: true, 128: true, 256: true}
	supportedSeedBits = map[int]bool{
		32: true, 64: true, 95: true, 96: true, 112: true,
		127: true, 128: true, 191: true, 256: true,
	}
)

// Descriptor is an immutable record describing one hash under test
// (spec §3).
type Descriptor struct {
	Name                 string
	Description          string
	HashBits             int
	SeedBits             int
	VerificationConstant uint32

	HashFn HashFunc
	// SeedFn/HashWithStateFn are optional; when absent the stateful variant
	// falls back to calling HashFn directly (Compute == ComputeWithState
	// for hashes with no amortizable seed schedule).
	SeedFn          SeedFunc
	HashWithStateFn HashWithStateFunc
}

// Validate checks that the descriptor's widths are ones the surface can
// dispatch on. An unsupported pair is a fatal configuration error, not a
// recoverable test failure (spec §4.1 "Failure").
func (d *Descriptor) Validate() error {
	if !supportedHashBits[d.HashBits] {
		return errors.Configuration("unsupported hash_bits %d for hash %q", d.HashBits, d.Name)
	}
	if !supportedSeedBits[d.SeedBits] {
		return errors.Configuration("unsupported seed_bits %d for hash %q", d.SeedBits, d.Name)
	}
	if d.HashFn == nil {
		return errors.Configuration("hash %q has no hash_fn", d.Name)
	}
	return nil
}

// Compute dispatches to the descriptor's hash_fn. Seed widths that are not
// byte-aligned (95, 127, 191) are represented padded to the next byte
// boundary by blob.Blob itself; the declared bit count is what the
// underlying algorithm is told about, with any remainder zero.
func (d *Descriptor) Compute(key []byte, seed blob.Blob) blob.Blob {
	return d.HashFn(key, seed)
}

// PrepareSeed builds a stateful seed schedule for repeated hashing under one
// seed (required by Avalanche, which hashes millions of keys per seed).
func (d *Descriptor) PrepareSeed(seed blob.Blob) any {
	if d.SeedFn == nil {
		return seed
	}
	return d.SeedFn(seed)
}

// ComputeWithState hashes key using a state produced by PrepareSeed. When
// the descriptor has no stateful variant this simply recomputes from the
// original seed Blob, which PrepareSeed returned verbatim in that case -
// preserving the spec's equivalence invariant
// (hash_fn(key, seed) == hash_with_state_fn(key, seed_fn(seed))).
func (d *Descriptor) ComputeWithState(key []byte, state any) blob.Blob {
	if d.HashWithStateFn == nil {
		return d.HashFn(key, state.(blob.Blob))
	}
	return d.HashWithStateFn(key, state)
}
