package orchestrator

import (
	"context"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/config"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/bitshash/smharness/keysets"
	"github.com/bitshash/smharness/rng"
	"github.com/bitshash/smharness/stats"
)

// collisionVerdict turns a collision-count result into a Pass/Fail verdict:
// fail if the observed count exceeds the expected count by more than the
// original harness's "worst ratio" tolerance (spec §4.4.1, §4.4.3).
func collisionVerdict(r stats.CollisionResult) SubTestReport {
	ratio := r.Ratio()
	verdict := Pass
	if ratio > collisionMaxRatio {
		verdict = Fail
	}
	return SubTestReport{Verdict: verdict, Statistic: float64(r.Collisions), Expected: r.Expected, Threshold: collisionMaxRatio}
}

// collisionMaxRatio mirrors the avalanche analyzer's worst-case ratio
// tolerance: a collision count more than 1.5x the uniform-model expectation
// is reported as a failure (spec §4.4.1 "pass threshold is a multiple of
// E").
const collisionMaxRatio = 1.5

func runDiff(d *hashsurface.Descriptor) SubTestReport {
	r := rng.New(keysets.SparseSeed)
	seed := r.Blob(d.SeedBits)

	var suspects int
	for _, cfg := range keysets.DiffConfigs() {
		found := keysets.Differential(d, cfg.Width, cfg.MaxWeight, 1000, seed, r)
		suspects += len(found)
	}

	verdict := Pass
	if suspects > 0 {
		verdict = Fail
	}
	return SubTestReport{Verdict: verdict, Statistic: float64(suspects), Expected: 0}
}

func runCyclic(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	r := rng.New(keysets.CyclicSeed)
	seed := r.Blob(d.SeedBits)

	estimatedN := int64(len(keysets.CyclicOffsets)) * int64(keysets.CyclicCount)
	counter := newCollisionCounter(settings, d.HashBits, estimatedN)
	var processed int64

	for _, offset := range keysets.CyclicOffsets {
		keyBytes := keysets.CyclicKeyBytes(d.HashBits, offset)
		cancelled := false
		keysets.CyclicKeys(keyBytes, keysets.CyclicCycleLen, keysets.CyclicCount, r, func(key []byte) bool {
			counter.Add(d.Compute(key, seed))
			processed++
			if checkCancellation(ctx, processed) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return SubTestReport{Verdict: Indeterminate}
		}
	}

	return collisionVerdict(counter.Result())
}

func runTwoBytes(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	r := rng.New(keysets.SparseSeed)
	seed := r.Blob(d.SeedBits)

	var estimatedN int64
	for _, length := range keysets.TwoBytesLengths {
		pairs := int64(length) * int64(length-1) / 2
		estimatedN += pairs * 255 * 255
	}
	counter := newCollisionCounter(settings, d.HashBits, estimatedN)
	var processed int64
	cancelled := false

	for _, length := range keysets.TwoBytesLengths {
		keysets.TwoBytesKeys(length, func(key []byte) bool {
			counter.Add(d.Compute(key, seed))
			processed++
			if checkCancellation(ctx, processed) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return SubTestReport{Verdict: Indeterminate}
		}
	}

	return collisionVerdict(counter.Result())
}

func runSparse(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	r := rng.New(keysets.SparseSeed)
	seed := r.Blob(d.SeedBits)

	var estimatedN int64
	for _, cfg := range keysets.SparseConfigs() {
		estimatedN += 2 * binomialSum(cfg.Width, cfg.K)
	}
	counter := newCollisionCounter(settings, d.HashBits, estimatedN)
	var processed int64
	cancelled := false

	for _, cfg := range keysets.SparseConfigs() {
		keysets.SparseKeys(cfg.Width, cfg.K, func(key blob.Blob) bool {
			counter.Add(d.Compute(key.Bytes(), seed))
			processed++
			if checkCancellation(ctx, processed) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return SubTestReport{Verdict: Indeterminate}
		}
	}

	return collisionVerdict(counter.Result())
}

func runCombination(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	var estimatedN int64
	for _, cfg := range keysets.CombinationConfigs() {
		estimatedN += intPow(int64(len(cfg.Blocks)), cfg.N)
	}
	counter := newCollisionCounter(settings, d.HashBits, estimatedN)
	var processed int64
	cancelled := false

	for _, cfg := range keysets.CombinationConfigs() {
		seed := rng.New(uint64(cfg.Seed)).Blob(d.SeedBits)

		keysets.CombinationKeys(cfg, func(key []byte) bool {
			counter.Add(d.Compute(key, seed))
			processed++
			if checkCancellation(ctx, processed) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return SubTestReport{Verdict: Indeterminate}
		}
	}

	return collisionVerdict(counter.Result())
}

func runWindowed(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	r := rng.New(keysets.WindowedSeed)
	seed := r.Blob(d.SeedBits)
	keyBits := keysets.WindowedKeyBits(d.HashBits)
	base := r.Blob(keyBits)

	// Each offset's keys are collision-tested on their own counter: windows
	// at different offsets share keys, so pooling them would count those
	// shared keys as collisions.
	estimatedN := int64(1) << uint(keysets.WindowedBits)
	var processed int64
	cancelled := false
	var report SubTestReport

	for _, offset := range keysets.WindowedOffsets(keyBits) {
		counter := newCollisionCounter(settings, d.HashBits, estimatedN)
		keysets.WindowedKeys(base, keyBits, keysets.WindowedBits, offset, func(key blob.Blob) bool {
			counter.Add(d.Compute(key.Bytes(), seed))
			processed++
			if checkCancellation(ctx, processed) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return SubTestReport{Verdict: Indeterminate}
		}
		report = collisionVerdict(counter.Result())
		if report.Verdict == Fail {
			return report
		}
	}

	return report
}

func runText(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	r := rng.New(keysets.TextSeed)
	seed := r.Blob(d.SeedBits)

	var estimatedN int64
	for _, cfg := range keysets.TextConfigs() {
		estimatedN += intPow(int64(len(keysets.TextAlphabet)), cfg.Len)
	}

	var processed int64
	cancelled := false
	counter := newCollisionCounter(settings, d.HashBits, estimatedN)

	for _, cfg := range keysets.TextConfigs() {
		keysets.TextKeys(cfg, func(key []byte) bool {
			counter.Add(d.Compute(key, seed))
			processed++
			if checkCancellation(ctx, processed) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return SubTestReport{Verdict: Indeterminate}
		}
	}

	return collisionVerdict(counter.Result())
}

// repeatedCharVariant selects Zeroes (0) or Effs (1) from
// keysets.RepeatedCharConfigs().
func runRepeatedChar(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings, variant int) SubTestReport {
	cfg := keysets.RepeatedCharConfigs()[variant]
	r := rng.New(uint64(cfg.Seed))
	seed := r.Blob(d.SeedBits)

	counter := newCollisionCounter(settings, d.HashBits, int64(cfg.Count))
	var processed int64
	cancelled := false

	keysets.RepeatedCharKeys(cfg, r, func(key []byte) bool {
		counter.Add(d.Compute(key, seed))
		processed++
		if checkCancellation(ctx, processed) {
			cancelled = true
			return false
		}
		return true
	})
	if cancelled {
		return SubTestReport{Verdict: Indeterminate}
	}

	return collisionVerdict(counter.Result())
}

func runSeed(ctx context.Context, d *hashsurface.Descriptor, settings *config.Settings) SubTestReport {
	r := rng.New(keysets.SeedTestSeed)
	key := []byte(keysets.SeedTestKeys[0])

	counter := newCollisionCounter(settings, d.HashBits, int64(keysets.SeedTestReps))
	var processed int64
	cancelled := false

	keysets.SeedTestSeeds(d.SeedBits, keysets.SeedTestReps, r, func(seed blob.Blob) bool {
		counter.Add(d.Compute(key, seed))
		processed++
		if checkCancellation(ctx, processed) {
			cancelled = true
			return false
		}
		return true
	})
	if cancelled {
		return SubTestReport{Verdict: Indeterminate}
	}

	return collisionVerdict(counter.Result())
}

func runAvalanche(d *hashsurface.Descriptor) SubTestReport {
	r := rng.New(keysets.AvalancheSeed)
	keyBits := keysets.AvalancheKeyBits(d.HashBits)
	reps := keysets.AvalancheReps(d.HashBits)

	matrix := stats.NewAvalancheMatrix(d.SeedBits+keyBits, d.HashBits)
	keysets.BitFlipSamples(d.SeedBits, keyBits, reps, r, func(seed, key, flippedSeed, flippedKey blob.Blob, inputBit int) bool {
		h1 := d.Compute(key.Bytes(), seed)
		h2 := d.Compute(flippedKey.Bytes(), flippedSeed)
		matrix.Add(inputBit, h1.Xor(h2))
		return true
	})

	result := matrix.Analyze()
	verdict := Pass
	if !result.Pass() {
		verdict = Fail
	}
	return SubTestReport{Verdict: verdict, Statistic: result.MaxBias, Expected: result.ExpectedBias, Threshold: stats.AvalancheMaxErrorRatio}
}

func runBIC(d *hashsurface.Descriptor) SubTestReport {
	r := rng.New(keysets.AvalancheSeed)

	matrix := stats.NewBICMatrix(d.SeedBits+keysets.BICKeyBits, d.HashBits)
	keysets.BitFlipSamples(d.SeedBits, keysets.BICKeyBits, keysets.BICReps, r, func(seed, key, flippedSeed, flippedKey blob.Blob, inputBit int) bool {
		h1 := d.Compute(key.Bytes(), seed)
		h2 := d.Compute(flippedKey.Bytes(), flippedSeed)
		matrix.Add(inputBit, h1.Xor(h2))
		return true
	})

	result := matrix.Analyze()
	verdict := Pass
	if !result.Pass() {
		verdict = Fail
	}
	return SubTestReport{Verdict: verdict, Statistic: result.MaxBias, Expected: result.Expected}
}

func runDiffDist(d *hashsurface.Descriptor) SubTestReport {
	r := rng.New(keysets.SparseSeed)
	seed := r.Blob(d.SeedBits)

	var worstPValue = 1.0
	for _, cfg := range keysets.DiffConfigs() {
		byteLen := (cfg.Width + 7) / 8
		deltaSample := blob.New(cfg.Width).SetBit(0, 1)

		outputs := make([]blob.Blob, 0, 10000)
		for i := 0; i < 10000; i++ {
			base := r.Bytes(byteLen)
			other := make([]byte, byteLen)
			copy(other, base)
			xorInto(other, deltaSample.Bytes())

			h1 := d.Compute(base, seed)
			h2 := d.Compute(other, seed)
			outputs = append(outputs, h1.Xor(h2))
		}

		result := stats.AnalyzeDiffDist(deltaSample, outputs)
		if result.Bucket.PValue < worstPValue {
			worstPValue = result.Bucket.PValue
		}
	}

	verdict := Pass
	if worstPValue < 0.00001 {
		verdict = Fail
	}
	return SubTestReport{Verdict: verdict, Statistic: worstPValue, Expected: 1.0}
}

func xorInto(dst, src []byte) {
	for i := range dst {
		if i < len(src) {
			dst[i] ^= src[i]
		}
	}
}
