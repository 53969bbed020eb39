package keysets

// BICKeyBits and BICReps are the original harness's literal parameters for
// the BIC sub-test: a fixed 88-bit key width and 2,000,000 trials,
// regardless of the hash's own key-length flexibility (spec §9, Open
// Question - the original only ever instantiates BicTest3<Blob<88>>).
const (
	BICKeyBits = 88
	BICReps    = 2000000
)
