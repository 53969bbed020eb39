// Package metrics registers the harness's prometheus counters and
// histograms, grounded on the lazy-init-guard pattern in the teacher's
// services/blockassembly/subtreeprocessor/metrics.go. These are ambient
// observability, not part of any pass/fail decision.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubTestsTotal *prometheus.CounterVec
	CollisionsTotal prometheus.Counter
	KeysGeneratedTotal prometheus.Counter
	SubTestDuration *prometheus.HistogramVec

	once sync.Once
)

// Init registers the harness's metrics with the default prometheus
// registry. Safe to call multiple times; registration only happens once.
func Init() {
	once.Do(func() {
		SubTestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "harness",
				Name:      "subtests_total",
				Help:      "Number of sub-tests completed, by verdict.",
			},
			[]string{"verdict"},
		)

		CollisionsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "harness",
				Name:      "collisions_total",
				Help:      "Total colliding pairs observed across all sub-tests.",
			},
		)

		KeysGeneratedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "harness",
				Name:      "keys_generated_total",
				Help:      "Total keys generated across all keyset generators.",
			},
		)

		SubTestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "harness",
				Name:      "subtest_duration_seconds",
				Help:      "Sub-test wall-clock duration.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"subtest"},
		)
	})
}
