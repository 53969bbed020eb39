package stats

import "github.com/bitshash/smharness/blob"

// BICMatrix accumulates, for every input bit and every pair of output
// bits (j,k) with j<k, the four-way joint distribution of (ΔH_j, ΔH_k)
// across trials (spec §4.4.4). Output bit pairs are stored densely
// per input bit; this is sized for the harness's own reference hashes
// (32-256 bit outputs), not for hypothetical kilobit-wide hashes.
// inputBits is seed_bits+key_bits, matching AvalancheMatrix: every row
// gets its own independent sample count since rows are not guaranteed to
// receive equal samples.
type BICMatrix struct {
	inputBits int
	hashBits  int
	// joint[inputBit][pairIndex][outcome], outcome = (bit_j<<1)|bit_k in [0,4)
	joint   [][][4]int64
	rowReps []int64
}

// NewBICMatrix allocates a matrix for the given combined seed+key width
// and hash width.
func NewBICMatrix(inputBits, hashBits int) *BICMatrix {
	pairCount := hashBits * (hashBits - 1) / 2
	joint := make([][][4]int64, inputBits)
	for i := range joint {
		joint[i] = make([][4]int64, pairCount)
	}
	return &BICMatrix{inputBits: inputBits, hashBits: hashBits, joint: joint, rowReps: make([]int64, inputBits)}
}

func pairIndex(hashBits, j, k int) int {
	// Triangular index for j < k over [0, hashBits).
	return j*hashBits - j*(j+1)/2 + (k - j - 1)
}

// Add records one trial: inputBit was flipped, producing outputXor.
func (m *BICMatrix) Add(inputBit int, outputXor blob.Blob) {
	m.rowReps[inputBit]++
	row := m.joint[inputBit]
	for j := 0; j < m.hashBits; j++ {
		bj := outputXor.Bit(j)
		for k := j + 1; k < m.hashBits; k++ {
			bk := outputXor.Bit(k)
			idx := pairIndex(m.hashBits, j, k)
			outcome := (bj << 1) | bk
			row[idx][outcome]++
		}
	}
}

// BICResult is the joint-independence verdict (spec §4.4.4).
type BICResult struct {
	Reps     int64
	MaxBias  float64
	Expected float64
}

// Pass reports whether the maximum observed bias is at most Expected, which
// is 0.00256 / (row_reps/100000) for the row where that bias was seen. The
// threshold shrinks as 1/row_reps, not as 1/sqrt(row_reps).
func (r BICResult) Pass() bool {
	return r.MaxBias <= r.Expected
}

// bicThresholdConstant is the same empirical 1-sigma calibration used by
// the avalanche analyzer, reused here because BIC's joint bias has the
// same Bernoulli-trial sampling character as avalanche's per-bit bias.
const bicThresholdConstant = 0.00256

// Analyze computes the maximum deviation, across every (input bit, output
// pair, outcome), of the observed joint frequency from 0.25 (the ideal
// uniform joint distribution over 2 independent bits), normalizing each
// row by its own observed sample count (see AvalancheMatrix.Analyze).
func (m *BICMatrix) Analyze() BICResult {
	var maxBias float64
	var maxBiasRowReps int64
	var totalReps int64

	for i, row := range m.joint {
		repsF := float64(m.rowReps[i])
		totalReps += m.rowReps[i]
		if repsF == 0 {
			continue
		}
		for _, outcomes := range row {
			for _, c := range outcomes {
				f := float64(c) / repsF
				bias := f - 0.25
				if bias < 0 {
					bias = -bias
				}
				if bias > maxBias {
					maxBias = bias
					maxBiasRowReps = m.rowReps[i]
				}
			}
		}
	}

	expected := 0.0
	if maxBiasRowReps > 0 {
		expected = bicThresholdConstant / (float64(maxBiasRowReps) / 100000.0)
	}
	return BICResult{Reps: totalReps, MaxBias: maxBias, Expected: expected}
}
