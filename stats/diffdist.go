package stats

import "github.com/bitshash/smharness/blob"

// DiffDistResult is a bucket test applied to the output-XOR distribution
// under one fixed input-XOR delta: for an ideal hash this distribution is
// uniform, so the same χ²-style machinery as the bucket test applies
// directly (spec §4.4.5).
type DiffDistResult struct {
	Delta  blob.Blob
	Bucket BucketResult
}

// Pass reports whether the output-XOR distribution was consistent with
// uniform at the given confidence.
func (r DiffDistResult) Pass(confidence float64) bool { return r.Bucket.Pass(confidence) }

// AnalyzeDiffDist buckets and χ²-tests the output-XOR values produced by
// hashing many random keys under one fixed delta.
func AnalyzeDiffDist(delta blob.Blob, outputXors []blob.Blob) DiffDistResult {
	return DiffDistResult{Delta: delta, Bucket: ChiSquared(BucketCounts(outputXors))}
}
