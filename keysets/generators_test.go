package keysets

import (
	"testing"

	"github.com/bitshash/smharness/blob"
	"github.com/stretchr/testify/assert"
)

func TestCyclicKeysLengthAndCount(t *testing.T) {
	r := rngSeeded(CyclicSeed)
	count := 0
	var lastLen int
	CyclicKeys(12, CyclicCycleLen, 50, r, func(key []byte) bool {
		count++
		lastLen = len(key)
		return true
	})
	assert.Equal(t, 50, count)
	assert.Equal(t, 12, lastLen)
}

func TestTwoBytesKeysCoverAllPairs(t *testing.T) {
	count := 0
	TwoBytesKeys(4, func(key []byte) bool {
		count++
		return true
	})
	// C(4,2) * 255 * 255
	assert.Equal(t, 6*255*255, count)
}

func TestSparseKeysIncludeZeroAndAllOnes(t *testing.T) {
	var keys []blob.Blob
	SparseKeys(8, 1, func(key blob.Blob) bool {
		keys = append(keys, key)
		return true
	})

	zero := blob.New(8)
	ones := blob.New(8).Not()
	foundZero, foundOnes := false, false
	for _, k := range keys {
		if k.Equal(zero) {
			foundZero = true
		}
		if k.Equal(ones) {
			foundOnes = true
		}
	}
	assert.True(t, foundZero)
	assert.True(t, foundOnes)
}

func TestCombinationKeysCartesianSize(t *testing.T) {
	cfg := CombinationConfig{Name: "t", Blocks: []uint32{0, 1, 2}, N: 2}
	count := 0
	CombinationKeys(cfg, func(key []byte) bool {
		assert.Len(t, key, 8)
		count++
		return true
	})
	assert.Equal(t, 9, count)
}

func TestWindowedKeysCoverFullWindow(t *testing.T) {
	base := blob.New(16)
	count := 0
	WindowedKeys(base, 16, 4, 0, func(key blob.Blob) bool {
		count++
		return true
	})
	assert.Equal(t, 16, count)
}

func TestTextKeysSandwichPrefixSuffix(t *testing.T) {
	cfg := TextConfig{Prefix: "Foo", Suffix: "Bar", Len: 2}
	first := true
	TextKeys(cfg, func(key []byte) bool {
		if first {
			assert.Equal(t, "Foo", string(key[:3]))
			assert.Equal(t, "Bar", string(key[len(key)-3:]))
			first = false
		}
		return false
	})
}

func TestRepeatedCharKeysAllSameByte(t *testing.T) {
	cfg := RepeatedCharConfig{Name: "Zeroes", Byte: 0x00, Count: 20, MinLen: 1, MaxLen: 8}
	r := rngSeeded(cfg.Seed)
	RepeatedCharKeys(cfg, r, func(key []byte) bool {
		for _, b := range key {
			assert.Equal(t, byte(0x00), b)
		}
		return true
	})
}

func TestSeedTestSeedsCount(t *testing.T) {
	r := rngSeeded(SeedTestSeed)
	count := 0
	SeedTestSeeds(32, 10, r, func(seed blob.Blob) bool {
		count++
		return true
	})
	assert.Equal(t, 10, count)
}

func TestBitFlipSamplesExactlyOneBitDiffers(t *testing.T) {
	r := rngSeeded(AvalancheSeed)
	const seedBits = 16
	const keyBits = 32
	BitFlipSamples(seedBits, keyBits, 5, r, func(seed, key, flippedSeed, flippedKey blob.Blob, inputBit int) bool {
		diffBits := 0
		seedBytes, flippedSeedBytes := seed.Bytes(), flippedSeed.Bytes()
		for i := range seedBytes {
			diffBits += popcount(seedBytes[i] ^ flippedSeedBytes[i])
		}
		keyBytes, flippedKeyBytes := key.Bytes(), flippedKey.Bytes()
		for i := range keyBytes {
			diffBits += popcount(keyBytes[i] ^ flippedKeyBytes[i])
		}
		assert.Equal(t, 1, diffBits)

		if inputBit < seedBits {
			assert.NotEqual(t, seedBytes, flippedSeedBytes)
		} else {
			assert.NotEqual(t, keyBytes, flippedKeyBytes)
		}
		return true
	})
}

func popcount(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}
