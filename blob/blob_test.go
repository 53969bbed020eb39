package blob_test

import (
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint64RoundTrip(t *testing.T) {
	b := blob.FromUint64(32, 0xDEADBEEF)
	assert.Equal(t, uint64(0xDEADBEEF), b.Low64())
	assert.Equal(t, 32, b.Bits())
}

func TestBitSetFlip(t *testing.T) {
	b := blob.New(16)
	b2 := b.SetBit(3, 1)
	assert.Equal(t, 0, b.Bit(3), "original Blob must not be mutated")
	assert.Equal(t, 1, b2.Bit(3))

	b3 := b2.FlipBit(3)
	assert.Equal(t, 0, b3.Bit(3))
}

func TestPaddingBitsAlwaysZero(t *testing.T) {
	// 95 bits pads to 12 bytes; the top 1 bit of the 12th byte must stay zero.
	b := blob.FromBytes(95, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Equal(t, 12, len(b.Bytes()))
	assert.Equal(t, 1, b.Bit(94), "bit 94 is the last valid bit of a 95-bit blob")
	lastByte := b.Bytes()[11]
	assert.Equal(t, byte(0x7F), lastByte, "only the low 7 bits of the final byte are valid for a 95-bit blob")
}

func TestXorSelfIsZero(t *testing.T) {
	a := blob.FromUint64(64, 0x1234567890ABCDEF)
	z := a.Xor(a)
	assert.True(t, z.Equal(blob.New(64)))
}

func TestHighBitsBucketing(t *testing.T) {
	// top 4 bits of a 32-bit value 0xF0000000 should be 0xF
	b := blob.FromUint64(32, 0xF0000000)
	assert.Equal(t, uint64(0xF), b.HighBits(4))
}

func TestCompareOrdering(t *testing.T) {
	a := blob.FromUint64(32, 1)
	c := blob.FromUint64(32, 2)
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(a))
}

func TestAndOrNot(t *testing.T) {
	a := blob.FromUint64(8, 0b1100_1100)
	c := blob.FromUint64(8, 0b1010_1010)

	assert.Equal(t, uint64(0b1000_1000), a.And(c).Low64())
	assert.Equal(t, uint64(0b1110_1110), a.Or(c).Low64())
	assert.Equal(t, uint64(0b0011_0011), a.Not().Low64())
}
