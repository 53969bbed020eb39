package keysets

// TwoBytesLengths are the key lengths (in bytes) the TwoBytes sub-test runs
// at, taken verbatim from the original harness's `for (i = 4; i <= 20; i +=
// 4)` loop.
var TwoBytesLengths = []int{4, 8, 12, 16, 20}

// TwoBytesKeys yields a zero-filled key of the given length with every pair
// of byte positions (p0 < p1) set to every combination of non-zero values
// A, B in [1,255]. This exhaustively covers "two bytes changed anywhere in
// the key" and is sized to remain tractable: C(len,2) * 255 * 255 keys
// (spec §4.3 "TwoBytes").
func TwoBytesKeys(keyLen int, yield func(key []byte) bool) {
	for p0 := 0; p0 < keyLen; p0++ {
		for p1 := p0 + 1; p1 < keyLen; p1++ {
			for a := 1; a <= 255; a++ {
				for b := 1; b <= 255; b++ {
					key := make([]byte, keyLen)
					key[p0] = byte(a)
					key[p1] = byte(b)
					if !yield(key) {
						return
					}
				}
			}
		}
	}
}
