package keysets

import (
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/stretchr/testify/assert"
)

func TestForEachCombinationCounts(t *testing.T) {
	// C(5,2) = 10
	count := 0
	forEachCombination(5, 2, func(positions []int) bool {
		count++
		return true
	})
	assert.Equal(t, 10, count)
}

func TestForEachCombinationStopsEarly(t *testing.T) {
	count := 0
	forEachCombination(5, 2, func(positions []int) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestForEachDeltaUpToWeightProducesNonZeroDeltas(t *testing.T) {
	var deltas []blob.Blob
	forEachDeltaUpToWeight(8, 2, func(delta blob.Blob) bool {
		deltas = append(deltas, delta)
		return true
	})

	// C(8,1) + C(8,2) = 8 + 28 = 36
	assert.Len(t, deltas, 36)

	zero := blob.New(8)
	for _, d := range deltas {
		assert.False(t, d.Equal(zero), "every delta must be non-zero")
	}
}

func TestDifferentialFindsIdentityHashCollisions(t *testing.T) {
	d := identityDescriptorForTest()
	seed := blob.FromUint64(32, 0)
	r := newTestRNG()

	// identity hash only reads the first 4 bytes, so any delta confined to
	// byte 4 onward never changes the output - guaranteed collisions.
	suspects := Differential(d, 64, 1, 4, seed, r)
	assert.NotEmpty(t, suspects)
}
