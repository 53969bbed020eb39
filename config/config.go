// Package config defines the harness's TestConfiguration - which sub-tests
// run and at what confidence - built with the functional-options idiom the
// teacher uses for its retry package (util/retry/options.go), plus a
// process-level Settings loader for the ambient concerns (resource budget,
// worker concurrency) that are never part of the value passed to the
// Orchestrator (spec §9: "the current hash under test is a parameter,
// never process-wide" - the same applies to the suite configuration).
package config

import "github.com/ordishs/gocore"

// TestConfiguration selects which sub-tests run and at what confidence
// level (spec §3, §4.5).
type TestConfiguration struct {
	Confidence float64

	All       bool
	ReallyAll bool

	Sanity      bool
	Diff        bool
	DiffDist    bool // only runs when ReallyAll is also set
	Avalanche   bool
	BIC         bool // only runs when ReallyAll is also set
	Cyclic      bool
	TwoBytes    bool
	Sparse      bool
	Permutation bool
	Window      bool
	Text        bool
	Zeroes      bool
	Effs        bool
	Seed        bool
}

// Option configures a TestConfiguration.
type Option func(*TestConfiguration)

// New builds a TestConfiguration from defaults plus the given options.
func New(opts ...Option) *TestConfiguration {
	c := &TestConfiguration{
		Confidence: 0.99999,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithConfidence sets the confidence level p in (0,1) stored in the
// configuration. The orchestrator's sub-tests do not read it: collision
// verdicts use a fixed 1.5x ratio and DiffDist a fixed p-value cutoff of
// 0.00001.
func WithConfidence(p float64) Option {
	return func(c *TestConfiguration) { c.Confidence = p }
}

// WithAll enables every sub-test except the ReallyAll-gated ones.
func WithAll() Option {
	return func(c *TestConfiguration) { c.All = true }
}

// WithReallyAll enables every sub-test including BIC and DiffDist.
func WithReallyAll() Option {
	return func(c *TestConfiguration) { c.ReallyAll = true }
}

// WithOnly enables exactly the named sub-tests, by their TestConfiguration
// field name (case-sensitive: "Sanity", "Cyclic", "TwoBytes", ...).
func WithOnly(names ...string) Option {
	return func(c *TestConfiguration) {
		for _, n := range names {
			setFlag(c, n, true)
		}
	}
}

func setFlag(c *TestConfiguration, name string, v bool) {
	switch name {
	case "Sanity":
		c.Sanity = v
	case "Diff":
		c.Diff = v
	case "DiffDist":
		c.DiffDist = v
	case "Avalanche":
		c.Avalanche = v
	case "BIC":
		c.BIC = v
	case "Cyclic":
		c.Cyclic = v
	case "TwoBytes":
		c.TwoBytes = v
	case "Sparse":
		c.Sparse = v
	case "Permutation":
		c.Permutation = v
	case "Window":
		c.Window = v
	case "Text":
		c.Text = v
	case "Zeroes":
		c.Zeroes = v
	case "Effs":
		c.Effs = v
	case "Seed":
		c.Seed = v
	}
}

// Enabled reports whether the named sub-test should run under this
// configuration: its own flag, or the global All flag (ReallyAll implies
// All), except for the two sub-tests that ReallyAll alone gates.
func (c *TestConfiguration) Enabled(name string) bool {
	switch name {
	case "DiffDist", "BIC":
		return c.ReallyAll || flagValue(c, name)
	default:
		return c.All || c.ReallyAll || flagValue(c, name)
	}
}

func flagValue(c *TestConfiguration, name string) bool {
	switch name {
	case "Sanity":
		return c.Sanity
	case "Diff":
		return c.Diff
	case "DiffDist":
		return c.DiffDist
	case "Avalanche":
		return c.Avalanche
	case "BIC":
		return c.BIC
	case "Cyclic":
		return c.Cyclic
	case "TwoBytes":
		return c.TwoBytes
	case "Sparse":
		return c.Sparse
	case "Permutation":
		return c.Permutation
	case "Window":
		return c.Window
	case "Text":
		return c.Text
	case "Zeroes":
		return c.Zeroes
	case "Effs":
		return c.Effs
	case "Seed":
		return c.Seed
	default:
		return false
	}
}

// Settings holds process-level tunables that are deliberately kept outside
// TestConfiguration because they govern resource usage, not statistical
// semantics (spec §5: "collision counter MUST switch to radix-partitioned
// external mode when estimated in-memory footprint exceeds a configured
// budget").
type Settings struct {
	ResourceBudgetBytes int64
	WorkerConcurrency   int
	PrettyLogs          bool
}

// LoadSettings reads process-level tunables via gocore's config source,
// matching the teacher's gocore.Config() idiom (util/logger.go).
func LoadSettings() *Settings {
	budgetMB, _ := gocore.Config().GetInt("harness_resourceBudgetMB", 4096)
	workers, _ := gocore.Config().GetInt("harness_workerConcurrency", 0)

	return &Settings{
		ResourceBudgetBytes: int64(budgetMB) * 1024 * 1024,
		WorkerConcurrency:   workers,
		PrettyLogs:          gocore.Config().GetBool("PRETTY_LOGS", true),
	}
}
