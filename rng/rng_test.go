package rng_test

import (
	"testing"

	"github.com/bitshash/smharness/rng"
	"github.com/stretchr/testify/assert"
)

func TestReproducibility(t *testing.T) {
	a := rng.New(910203)
	b := rng.New(910203)

	for i := 0; i < 1024; i++ {
		assert.Equal(t, a.Uint32(), b.Uint32(), "draw %d diverged", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := rng.New(1)
	b := rng.New(2)

	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 2)
}

func TestZeroSeedDoesNotDegenerate(t *testing.T) {
	r := rng.New(0)
	nonZero := false
	for i := 0; i < 16; i++ {
		if r.Uint64() != 0 {
			nonZero = true
		}
	}
	assert.True(t, nonZero)
}

func TestBlobWidthAndPadding(t *testing.T) {
	r := rng.New(42)
	b := r.Blob(95)
	assert.Equal(t, 95, b.Bits())
	assert.Equal(t, 12, len(b.Bytes()))
}
