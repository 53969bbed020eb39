package keysets

import "github.com/bitshash/smharness/rng"

// RepeatedCharConfig is one repeated-byte sub-test variant: Zeroes fills
// keys with 0x00, Effs fills them with 0xFF, each with its own fixed RNG
// seed and key count taken verbatim from the original harness.
type RepeatedCharConfig struct {
	Name    string
	Byte    byte
	Seed    int64
	Count   int
	MinLen  int
	MaxLen  int
}

var repeatedCharConfigs = []RepeatedCharConfig{
	{Name: "Zeroes", Byte: 0x00, Seed: 834192, Count: 256 * 1024, MinLen: 1, MaxLen: 1024},
	{Name: "Effs", Byte: 0xFF, Seed: 4139126, Count: 256 * 1024, MinLen: 1, MaxLen: 1024},
}

// RepeatedCharConfigs exposes the Zeroes and Effs variants.
func RepeatedCharConfigs() []RepeatedCharConfig { return repeatedCharConfigs }

// RepeatedCharKeys yields cfg.Count keys, each a run of cfg.Byte at a
// random length in [cfg.MinLen, cfg.MaxLen]. A hash that mixes length
// poorly collides different-length all-same-byte keys far more than
// chance (spec §4.3 "Repeated-Char").
func RepeatedCharKeys(cfg RepeatedCharConfig, r *rng.RNG, yield func(key []byte) bool) {
	span := cfg.MaxLen - cfg.MinLen + 1
	for i := 0; i < cfg.Count; i++ {
		length := cfg.MinLen + r.Intn(span)
		key := make([]byte, length)
		for j := range key {
			key[j] = cfg.Byte
		}
		if !yield(key) {
			return
		}
	}
}
