package stats

import (
	"math"

	"github.com/bitshash/smharness/blob"
	"gonum.org/v1/gonum/stat/distuv"
)

// BucketResult reports a χ²-style goodness-of-fit test of hash outputs
// against the uniform distribution (spec §4.4.2).
type BucketResult struct {
	Buckets  int
	DF       int
	Score    float64
	PValue   float64
	Expected float64
}

// Pass reports whether the observed distribution is consistent with
// uniform at the given confidence: the score falls below the one-sided
// critical value, equivalently the p-value is not in the extreme tail.
func (r BucketResult) Pass(confidence float64) bool {
	return r.PValue >= 1-confidence
}

// BucketCounts partitions n hash outputs into 2^b buckets by their top b
// bits, choosing the largest b with 2^b <= n/5 so each bucket's expected
// count is at least 5 (spec §4.4.2).
func BucketCounts(outputs []blob.Blob) []int64 {
	n := len(outputs)
	b := bucketBits(n)
	buckets := make([]int64, int64(1)<<uint(b))
	for _, o := range outputs {
		buckets[o.HighBits(b)]++
	}
	return buckets
}

func bucketBits(n int) int {
	b := 0
	for (int64(1) << uint(b+1)) <= int64(n)/5 {
		b++
	}
	return b
}

// ChiSquared computes the bucket test's score and p-value for the given
// bucket counts, using an exact χ² CDF for df <= 100 and the
// Wilson-Hilferty asymptotic approximation above that (spec §4.4.2).
func ChiSquared(buckets []int64) BucketResult {
	var n int64
	for _, c := range buckets {
		n += c
	}
	expected := float64(n) / float64(len(buckets))

	var score float64
	for _, c := range buckets {
		diff := float64(c) - expected
		score += diff * diff / expected
	}

	df := len(buckets) - 1
	return BucketResult{
		Buckets:  len(buckets),
		DF:       df,
		Score:    score,
		PValue:   chiSquaredUpperTail(score, df),
		Expected: expected,
	}
}

// chiSquaredUpperTail computes P(X >= score) for X ~ ChiSquared(df),
// i.e. the bucket test's p-value. For df <= 100 this uses gonum's exact
// χ² distribution; above that, the Wilson-Hilferty cube-root
// transformation approximates a χ² variable as approximately normal,
// which stays numerically stable where the exact gamma-based CDF loses
// precision (spec §4.4.2).
func chiSquaredUpperTail(score float64, df int) float64 {
	if df <= 100 {
		chi := distuv.ChiSquared{K: float64(df)}
		return 1 - chi.CDF(score)
	}

	d := float64(df)
	// Wilson-Hilferty: (X/df)^(1/3) is approximately normal with mean
	// 1 - 2/(9df) and variance 2/(9df).
	h := 2.0 / (9.0 * d)
	z := (math.Cbrt(score/d) - (1 - h)) / math.Sqrt(h)
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	return 1 - norm.CDF(z)
}
