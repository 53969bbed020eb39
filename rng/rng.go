// Package rng implements the harness's deterministic, reproducible
// pseudo-random bit source (spec §4.2). Every keyset generator and every
// sub-test constructs a fresh RNG from a literal integer seed embedded in
// the test so that the generated keyset is bitwise identical across runs
// and platforms.
//
// No external library in the corpus ships a PRNG aimed at this contract
// (reproducible, uncorrelated, cheap); the algorithm itself - SplitMix64 to
// expand the seed, xoshiro256** to generate - is a public-domain
// construction, not a vendored dependency, so this package is intentionally
// stdlib-only (see DESIGN.md).
package rng

import "github.com/bitshash/smharness/blob"

// RNG is a small-state, seeded pseudo-random generator. It is not safe for
// concurrent use; each sub-test and each parallel worker owns its own
// instance (spec §5: "the RNG is test-local so no synchronization is
// needed").
type RNG struct {
	s [4]uint64
}

// New builds an RNG from a 64-bit integer seed. The first 1024 32-bit words
// drawn from New(seed) for a fixed seed are guaranteed identical across
// runs and platforms (spec §8, Universal Property 2).
func New(seed uint64) *RNG {
	r := &RNG{}
	sm := splitMix64{state: seed}
	for i := range r.s {
		r.s[i] = sm.next()
	}
	// xoshiro256** requires a non-zero state; SplitMix64 output is non-zero
	// with overwhelming probability, but guard the degenerate seed=0 case.
	allZero := true
	for _, w := range r.s {
		if w != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		r.s[0] = 1
	}
	return r
}

// NewFromInt32 builds an RNG from a 32-bit literal seed, the common case in
// this spec's embedded test seeds (e.g. 910203 for Cyclic).
func NewFromInt32(seed int32) *RNG { return New(uint64(uint32(seed))) }

type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// Uint64 returns the next 64-bit word, via xoshiro256**.
func (r *RNG) Uint64() uint64 {
	result := rotl(r.s[1]*5, 7) * 9

	t := r.s[1] << 17

	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]

	r.s[2] ^= t

	r.s[3] = rotl(r.s[3], 45)

	return result
}

// Uint32 returns the next 32-bit word, taken from the high half of a 64-bit
// draw (the high bits of xoshiro256** have the best statistical quality).
func (r *RNG) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// Intn returns a uniform value in [0, n). n must be > 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn requires n > 0")
	}
	return int(r.Uint64() % uint64(n))
}

// Bytes fills and returns a slice of n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	out := make([]byte, n)
	i := 0
	for i+8 <= n {
		v := r.Uint64()
		out[i+0] = byte(v)
		out[i+1] = byte(v >> 8)
		out[i+2] = byte(v >> 16)
		out[i+3] = byte(v >> 24)
		out[i+4] = byte(v >> 32)
		out[i+5] = byte(v >> 40)
		out[i+6] = byte(v >> 48)
		out[i+7] = byte(v >> 56)
		i += 8
	}
	if i < n {
		v := r.Uint64()
		for ; i < n; i++ {
			out[i] = byte(v)
			v >>= 8
		}
	}
	return out
}

// Blob returns an arbitrary-width Blob built by concatenating RNG draws,
// with any padding bits above the declared width zeroed (spec §4.6).
func (r *RNG) Blob(bits int) blob.Blob {
	return blob.FromBytes(bits, r.Bytes((bits+7)/8))
}
