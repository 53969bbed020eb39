package stats

import "github.com/bitshash/smharness/blob"

// AvalancheMaxPctError and AvalancheMaxErrorRatio are the pass thresholds
// from the original harness: a per-bit bias may not exceed 1%, and the
// worst bias may not exceed 1.5x its expected (empirically calibrated)
// tolerance (spec §4.4.3).
const (
	AvalancheMaxPctError   = 0.01
	AvalancheMaxErrorRatio = 1.5
)

// AvalancheMatrix accumulates, per (input bit, output bit), how often
// flipping the input bit flips the output bit. inputBits is
// seed_bits+key_bits (spec §4.3): every row - seed bits and key bits alike
// - gets its own independent sample count. BitFlipSamples hits every row
// once per trial, but Add accepts rows in any order and number, so the
// matrix does not assume equal counts.
type AvalancheMatrix struct {
	inputBits int
	hashBits  int
	counts    [][]int64 // counts[inputBit][outputBit]
	rowReps   []int64   // rowReps[inputBit]: trials observed for that row
}

// NewAvalancheMatrix allocates a matrix for the given combined
// seed+key width and hash width.
func NewAvalancheMatrix(inputBits, hashBits int) *AvalancheMatrix {
	counts := make([][]int64, inputBits)
	for i := range counts {
		counts[i] = make([]int64, hashBits)
	}
	return &AvalancheMatrix{inputBits: inputBits, hashBits: hashBits, counts: counts, rowReps: make([]int64, inputBits)}
}

// Add records one trial: inputBit was flipped, producing outputXor =
// hash(original) XOR hash(flipped).
func (m *AvalancheMatrix) Add(inputBit int, outputXor blob.Blob) {
	m.rowReps[inputBit]++
	row := m.counts[inputBit]
	for j := 0; j < m.hashBits; j++ {
		if outputXor.Bit(j) == 1 {
			row[j]++
		}
	}
}

// AvalancheResult is the bias/ratio verdict derived from an AvalancheMatrix
// (spec §4.4.3).
type AvalancheResult struct {
	Reps         int64
	MaxBias      float64
	ExpectedBias float64
	WorstRatio   float64
}

// Pass reports whether the avalanche property held within threshold.
func (r AvalancheResult) Pass() bool {
	return r.MaxBias <= AvalancheMaxPctError && r.WorstRatio <= AvalancheMaxErrorRatio
}

// Analyze computes max_bias and worst_ratio from the accumulated matrix,
// normalizing each row by its own observed sample count rather than a
// single count shared across all rows - rows are not guaranteed to receive
// equal samples. expected_bias = 0.00256 / (row_reps/100000) is the
// original harness's empirically calibrated 1-sigma tolerance for that
// row's sample size.
func (m *AvalancheMatrix) Analyze() AvalancheResult {
	var maxBias float64
	var maxBiasRowReps int64
	var totalReps int64

	for i, row := range m.counts {
		repsF := float64(m.rowReps[i])
		totalReps += m.rowReps[i]
		if repsF == 0 {
			continue
		}
		for _, c := range row {
			f := float64(c) / repsF
			bias := f - 0.5
			if bias < 0 {
				bias = -bias
			}
			if bias > maxBias {
				maxBias = bias
				maxBiasRowReps = m.rowReps[i]
			}
		}
	}

	expectedBias := 0.0
	if maxBiasRowReps > 0 {
		expectedBias = 0.00256 / (float64(maxBiasRowReps) / 100000.0)
	}
	worstRatio := 0.0
	if expectedBias > 0 {
		worstRatio = maxBias / expectedBias
	}

	return AvalancheResult{
		Reps:         totalReps,
		MaxBias:      maxBias,
		ExpectedBias: expectedBias,
		WorstRatio:   worstRatio,
	}
}
