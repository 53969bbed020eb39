package orchestrator_test

import (
	"context"
	"testing"

	"github.com/bitshash/smharness/config"
	"github.com/bitshash/smharness/hashes"
	"github.com/bitshash/smharness/orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSanityOnlyAgainstFNV(t *testing.T) {
	o := orchestrator.New(nil, nil)
	cfg := config.New(config.WithOnly("Sanity"))

	suite := o.Run(context.Background(), hashes.FNV1a32, cfg)
	require.True(t, suite.VerificationOK)
	assert.Len(t, suite.SubTests, 1)
	assert.Equal(t, "Sanity", suite.SubTests[0].Name)
}

func TestTestByNameUnknownReturnsFalse(t *testing.T) {
	o := orchestrator.New(nil, nil)
	_, ok := o.TestByName(context.Background(), "does-not-exist", config.New())
	assert.False(t, ok)
}

func TestSelfTestCoversAllRegisteredDescriptors(t *testing.T) {
	o := orchestrator.New(nil, nil)
	reports := o.SelfTest(context.Background(), config.New(), false)
	assert.Len(t, reports, hashes.Count())
	for _, r := range reports {
		assert.True(t, r.VerificationOK, r.DescriptorName)
	}
}

func TestIdentityHashFailsSanity(t *testing.T) {
	// identity-32 only ever looks at the first 4 key bytes, so extending a
	// key beyond that never changes the hash - the AppendedZeroes property
	// must fail, and the suite's overall verdict must reflect it.
	o := orchestrator.New(nil, nil)
	cfg := config.New(config.WithOnly("Sanity"))

	suite := o.Run(context.Background(), hashes.Identity32, cfg)
	assert.Equal(t, orchestrator.Fail, suite.OverallVerdict)
}
