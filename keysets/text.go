package keysets

// TextSeed is the fixed RNG seed the original harness uses for the Text
// sub-test (unused by the generator itself, which is exhaustive, but kept
// for parity with the original driver).
const TextSeed = 543823

// TextAlphabet is the 62-character alphanumeric alphabet the Text sub-test
// draws from, taken verbatim from the original harness.
const TextAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TextConfig describes one Text sub-test variant: a fixed prefix and
// suffix sandwiching `Len` characters drawn exhaustively from the
// alphabet.
type TextConfig struct {
	Prefix string
	Suffix string
	Len    int
}

// textConfigs are the three variants from the original harness's RunTests
// driver: TextKeyTest(hash, "Foo", alnum, "Bar"), ("FooBar", alnum, ""),
// ("", alnum, "FooBar").
var textConfigs = []TextConfig{
	{Prefix: "Foo", Suffix: "Bar", Len: 4},
	{Prefix: "FooBar", Suffix: "", Len: 4},
	{Prefix: "", Suffix: "FooBar", Len: 4},
}

// TextConfigs exposes the three Text sub-test variants.
func TextConfigs() []TextConfig { return textConfigs }

// TextKeys yields every key formed by sandwiching all len(TextAlphabet)^Len
// combinations of cfg.Len alphabet characters between cfg.Prefix and
// cfg.Suffix. This targets hashes that mix a fixed surrounding context
// poorly against a small varying alphanumeric payload (spec §4.3 "Text").
func TextKeys(cfg TextConfig, yield func(key []byte) bool) {
	middle := make([]byte, cfg.Len)
	var rec func(pos int) bool
	rec = func(pos int) bool {
		if pos == cfg.Len {
			key := make([]byte, 0, len(cfg.Prefix)+cfg.Len+len(cfg.Suffix))
			key = append(key, cfg.Prefix...)
			key = append(key, middle...)
			key = append(key, cfg.Suffix...)
			return yield(key)
		}
		for i := 0; i < len(TextAlphabet); i++ {
			middle[pos] = TextAlphabet[i]
			if !rec(pos + 1) {
				return false
			}
		}
		return true
	}
	rec(0)
}
