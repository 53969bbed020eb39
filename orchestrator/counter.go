package orchestrator

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/config"
	"github.com/bitshash/smharness/stats"
)

// collisionCounter is the common shape of stats.InMemoryCollisionCounter
// and stats.RadixCollisionCounter, letting subtests.go pick either without
// knowing which it got (spec §5).
type collisionCounter interface {
	Add(output blob.Blob)
	Result() stats.CollisionResult
}

// mapOverheadFactor is a rough per-entry memory multiplier for
// InMemoryCollisionCounter's Go map (key bytes, the empty-struct value,
// and Go's own map/bucket bookkeeping) - not an exact accounting, just
// enough to decide which side of the configured budget an estimated run
// falls on.
const mapOverheadFactor = 4

// newCollisionCounter picks InMemoryCollisionCounter or
// RadixCollisionCounter for a sub-test expected to produce estimatedN
// outputs, switching to the radix-partitioned counter once the estimated
// footprint of the in-memory counter would exceed the configured resource
// budget (spec §5: "the collision counter MUST switch to radix-partitioned
// external mode when estimated in-memory footprint exceeds a configured
// budget"). A non-positive budget (the zero default, or an explicit
// opt-out) disables the switch entirely.
func newCollisionCounter(settings *config.Settings, hashBits int, estimatedN int64) collisionCounter {
	bytesPerKey := int64((hashBits + 7) / 8)
	estimatedBytes := estimatedN * bytesPerKey * mapOverheadFactor

	if settings == nil || settings.ResourceBudgetBytes <= 0 || estimatedBytes <= settings.ResourceBudgetBytes {
		return stats.NewInMemoryCollisionCounter(hashBits)
	}
	return stats.NewRadixCollisionCounter(hashBits, estimatedN)
}

// binomialSum returns sum_{i=0}^{k} C(n,i), used to estimate the output
// count of the Sparse keyset's bounded-Hamming-weight enumeration without
// actually running it.
func binomialSum(n, k int) int64 {
	sum, c := int64(1), int64(1) // C(n,0) == 1
	for i := 0; i < k; i++ {
		c = c * int64(n-i) / int64(i+1) // C(n,i+1) from C(n,i)
		sum += c
	}
	return sum
}

// intPow returns base^exp for small non-negative integer exponents -
// Combination and Text's exhaustive Cartesian-product sizes overflow
// float64's useful precision long before they'd overflow int64, so this
// avoids math.Pow's float rounding entirely.
func intPow(base int64, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
