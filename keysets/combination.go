package keysets

import "encoding/binary"

// CombinationConfig is one named Combination sub-test variant: a palette of
// 32-bit words and a key width (in words) to place them at. Keys are the
// full Cartesian product of the palette across n word positions, so
// len(Blocks)^N must stay small - these five variants are taken verbatim
// from the original harness's RunTests driver.
type CombinationConfig struct {
	Name   string
	Seed   int64
	Blocks []uint32
	N      int
}

var combinationConfigs = []CombinationConfig{
	{
		Name:   "Combination Lowbits",
		Seed:   4810489,
		Blocks: []uint32{0, 1, 2, 3, 4, 5, 6, 7},
		N:      8,
	},
	{
		Name:   "Combination Highbits",
		Seed:   9104174,
		Blocks: []uint32{0, 0x20000000, 0x40000000, 0x60000000, 0x80000000, 0xA0000000, 0xC0000000, 0xE0000000},
		N:      8,
	},
	{
		Name:   "Combination 0x8000000",
		Seed:   183235,
		Blocks: []uint32{0, 0x80000000},
		N:      20,
	},
	{
		Name:   "Combination 0x0000001",
		Seed:   831951,
		Blocks: []uint32{0, 0x00000001},
		N:      20,
	},
	{
		Name: "Combination Hi-Lo",
		Seed: 47831,
		Blocks: []uint32{
			0, 1, 2, 3, 4, 5, 6, 7,
			0x80000000, 0x40000000, 0xC0000000, 0x20000000, 0xA0000000, 0x60000000, 0xE0000000,
		},
		N: 6,
	},
}

// CombinationConfigs exposes the five named Combination variants.
func CombinationConfigs() []CombinationConfig { return combinationConfigs }

// CombinationKeys yields every key formed by the Cartesian product of
// cfg.Blocks placed at each of cfg.N little-endian uint32 word positions.
// This targets hashes that fail to mix a small, structured palette of
// distinguishing bit patterns spread across the key (spec §4.3
// "Combination").
func CombinationKeys(cfg CombinationConfig, yield func(key []byte) bool) {
	words := make([]uint32, cfg.N)
	var rec func(pos int) bool
	rec = func(pos int) bool {
		if pos == cfg.N {
			key := make([]byte, cfg.N*4)
			for i, w := range words {
				binary.LittleEndian.PutUint32(key[i*4:], w)
			}
			return yield(key)
		}
		for _, b := range cfg.Blocks {
			words[pos] = b
			if !rec(pos + 1) {
				return false
			}
		}
		return true
	}
	rec(0)
}
