package keysets

import "github.com/bitshash/smharness/blob"

// WindowedSeed and WindowedBits are the original harness's literal
// parameters: a fixed RNG seed and a 20-bit sliding window.
const (
	WindowedSeed = 77589
	WindowedBits = 20
)

// WindowedKeyBits is the key width the Windowed sub-test uses: twice the
// hash width, per the original harness's Blob<hashbits*2> key type.
func WindowedKeyBits(hashBits int) int { return hashBits * 2 }

// WindowedKeys yields every value of a windowBits-wide window slid
// cyclically across a keyBits-wide key, holding the rest of the bits fixed
// to base. Each offset's 2^windowBits keys are a distinct generation run -
// only collisions WITHIN one offset's group are meaningful, since the
// sub-test only checks collisions, not distribution (spec §4.3 "Windowed":
// distribution is skipped as "too easy to distribute well" for a window
// this narrow).
func WindowedKeys(base blob.Blob, keyBits, windowBits, offset int, yield func(key blob.Blob) bool) {
	total := uint64(1) << uint(windowBits)
	for v := uint64(0); v < total; v++ {
		key := base.Clone()
		for bit := 0; bit < windowBits; bit++ {
			pos := (offset + bit) % keyBits
			val := (v >> uint(bit)) & 1
			key = key.SetBit(pos, int(val))
		}
		if !yield(key) {
			return
		}
	}
}

// WindowedOffsets returns every bit offset the sliding window visits: one
// per bit position in the key, matching the original harness's full
// cyclic sweep.
func WindowedOffsets(keyBits int) []int {
	offsets := make([]int, keyBits)
	for i := range offsets {
		offsets[i] = i
	}
	return offsets
}
