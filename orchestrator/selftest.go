package orchestrator

import (
	"context"

	"github.com/bitshash/smharness/config"
	"github.com/bitshash/smharness/hashes"
	"github.com/bitshash/smharness/keysets"
)

// SelfTestReport is the outcome of running every registered descriptor
// through Verification (and, if validate is true, the full sub-test
// suite), used by the harness's bootstrap self-check (spec §6
// "self_test").
type SelfTestReport struct {
	DescriptorName string
	VerificationOK bool
	Suite          *SuiteReport // nil unless validate was true
}

// SelfTest runs Verification against every registered descriptor
// (hashes.All), optionally running the full suite too. The loop bound is
// hashes.Count(), an explicit registered-descriptor count rather than a
// sizeof-derived value (spec §9, Open Question).
func (o *Orchestrator) SelfTest(ctx context.Context, cfg *config.TestConfiguration, validate bool) []SelfTestReport {
	reports := make([]SelfTestReport, 0, hashes.Count())

	for _, d := range hashes.All {
		_, ok := keysets.Verify(d)
		report := SelfTestReport{DescriptorName: d.Name, VerificationOK: ok}

		if validate {
			report.Suite = o.Run(ctx, d, cfg)
		}

		reports = append(reports, report)
	}

	return reports
}
