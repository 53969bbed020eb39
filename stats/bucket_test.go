package stats_test

import (
	"math/rand"
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/stats"
	"github.com/stretchr/testify/assert"
)

func TestChiSquaredUniformDataPasses(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	outputs := make([]blob.Blob, 1000000)
	for i := range outputs {
		outputs[i] = blob.FromUint64(32, uint64(rnd.Uint32()))
	}

	result := stats.ChiSquared(stats.BucketCounts(outputs))
	assert.GreaterOrEqual(t, result.PValue, 0.0)
	assert.LessOrEqual(t, result.PValue, 1.0)
	assert.True(t, result.Pass(0.99999))
}

func TestChiSquaredSkewedDataFails(t *testing.T) {
	outputs := make([]blob.Blob, 100000)
	for i := range outputs {
		// Every output identical - maximally non-uniform.
		outputs[i] = blob.FromUint64(32, 7)
	}

	result := stats.ChiSquared(stats.BucketCounts(outputs))
	assert.False(t, result.Pass(0.99999))
}

func TestWilsonHilferlyUsedAboveDF100(t *testing.T) {
	// 2^8 = 256 buckets, df = 255 > 100, exercises the asymptotic branch.
	buckets := make([]int64, 256)
	for i := range buckets {
		buckets[i] = 100
	}
	result := stats.ChiSquared(buckets)
	assert.Equal(t, 255, result.DF)
	assert.InDelta(t, 1.0, result.PValue, 0.5)
}
