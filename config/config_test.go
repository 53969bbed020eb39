package config_test

import (
	"testing"

	"github.com/bitshash/smharness/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsToNoSubTestsEnabled(t *testing.T) {
	c := config.New()
	assert.False(t, c.Enabled("Sanity"))
	assert.Equal(t, 0.99999, c.Confidence)
}

func TestWithOnlyEnablesExactlyNamed(t *testing.T) {
	c := config.New(config.WithOnly("Sanity", "Cyclic"))
	assert.True(t, c.Enabled("Sanity"))
	assert.True(t, c.Enabled("Cyclic"))
	assert.False(t, c.Enabled("Sparse"))
}

func TestWithAllEnablesEverythingExceptReallyAllGated(t *testing.T) {
	c := config.New(config.WithAll())
	assert.True(t, c.Enabled("Sanity"))
	assert.True(t, c.Enabled("Sparse"))
	assert.False(t, c.Enabled("BIC"))
	assert.False(t, c.Enabled("DiffDist"))
}

func TestWithReallyAllEnablesBICAndDiffDist(t *testing.T) {
	c := config.New(config.WithReallyAll())
	assert.True(t, c.Enabled("BIC"))
	assert.True(t, c.Enabled("DiffDist"))
	assert.True(t, c.Enabled("Sanity"))
}
