package orchestrator

import (
	"context"

	"github.com/bitshash/smharness/config"
	"github.com/bitshash/smharness/hashes"
	"github.com/bitshash/smharness/hashsurface"
)

// TestByName runs the suite against a registered descriptor looked up by
// name, reporting false if no such descriptor is registered (spec §6
// `test_by_name`).
func (o *Orchestrator) TestByName(ctx context.Context, name string, cfg *config.TestConfiguration) (*SuiteReport, bool) {
	d, ok := hashes.ByName(name)
	if !ok {
		return nil, false
	}
	return o.Run(ctx, d, cfg), true
}

// TestByDescriptor runs the suite against an arbitrary, caller-supplied
// descriptor rather than one of the built-in registrations (spec §6
// `test_by_descriptor`).
func (o *Orchestrator) TestByDescriptor(ctx context.Context, d *hashsurface.Descriptor, cfg *config.TestConfiguration) *SuiteReport {
	return o.Run(ctx, d, cfg)
}
