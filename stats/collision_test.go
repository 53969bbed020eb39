package stats_test

import (
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/stats"
	"github.com/stretchr/testify/assert"
)

func TestExpectedCollisionsMatchesBirthdayFormula(t *testing.T) {
	e := stats.ExpectedCollisions(1000, 32)
	assert.InDelta(t, 1000*999/(2*4294967296.0), e, 1e-9)
}

func TestInMemoryCollisionCounterDetectsDuplicate(t *testing.T) {
	c := stats.NewInMemoryCollisionCounter(8)
	c.Add(blob.FromUint64(8, 1))
	c.Add(blob.FromUint64(8, 2))
	c.Add(blob.FromUint64(8, 1))

	r := c.Result()
	assert.Equal(t, int64(3), r.N)
	assert.Equal(t, int64(1), r.Collisions)
}

func TestRadixCollisionCounterDetectsDuplicate(t *testing.T) {
	c := stats.NewRadixCollisionCounter(32, 100)
	c.Add(blob.FromUint64(32, 42))
	c.Add(blob.FromUint64(32, 99))
	c.Add(blob.FromUint64(32, 42))

	r := c.Result()
	assert.Equal(t, int64(3), r.N)
	assert.Equal(t, int64(1), r.Collisions)
}

func TestRadixCollisionCounterDistinguishesWideOutputsSharingLow64Bits(t *testing.T) {
	c := stats.NewRadixCollisionCounter(256, 100)

	base := make([]byte, 32)
	for i := range base[:8] {
		base[i] = byte(i + 1)
	}
	a := blob.FromBytes(256, base)
	b := a.FlipBit(200) // differs only above bit 64 - must not alias a's low-64-bit key

	c.Add(a)
	c.Add(b)
	c.Add(a) // true duplicate, must still be caught

	r := c.Result()
	assert.Equal(t, int64(3), r.N)
	assert.Equal(t, int64(1), r.Collisions)
}
