package orchestrator

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// subTestTask is one unit of dispatch: a named sub-test function that
// produces a report, given a cancellable context.
type subTestTask struct {
	name string
	run  func(ctx context.Context) SubTestReport
}

// dispatch fans tasks out across a bounded worker pool and reduces their
// reports into one disjoint slice, grounded on the worker-goroutine +
// buffered-channel + sync.WaitGroup pattern in
// util/distributor/Distributor.go (teacher), adapted from network fan-out
// to CPU-bound sub-test fan-out (spec §5). Each task owns its own
// generator-local RNG and accumulator, so no synchronization is needed
// beyond collecting the finished reports.
func dispatch(ctx context.Context, tasks []subTestTask, concurrency int) []SubTestReport {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > len(tasks) {
		concurrency = len(tasks)
	}
	if concurrency == 0 {
		return nil
	}

	taskCh := make(chan subTestTask, len(tasks))
	for _, t := range tasks {
		taskCh <- t
	}
	close(taskCh)

	reportCh := make(chan SubTestReport, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				start := time.Now()

				if ctx.Err() != nil {
					reportCh <- SubTestReport{Name: task.name, Verdict: Indeterminate, Duration: time.Since(start), Err: ctx.Err()}
					continue
				}

				report := task.run(ctx)
				report.Name = task.name
				if report.Duration == 0 {
					report.Duration = time.Since(start)
				}
				reportCh <- report
			}
		}()
	}

	wg.Wait()
	close(reportCh)

	reports := make([]SubTestReport, 0, len(tasks))
	for r := range reportCh {
		reports = append(reports, r)
	}
	return reports
}

// cancelledEvery1M is the key-count interval the Orchestrator's own
// long-running sub-tests check ctx for cancellation, per spec §5
// "Suspension points ... every 1M keys".
const cancelledEvery1M = 1000000

// checkCancellation reports whether the context was cancelled, intended to
// be called by a generator-driving loop once per cancelledEvery1M keys.
func checkCancellation(ctx context.Context, keysProcessed int64) bool {
	if keysProcessed%cancelledEvery1M != 0 {
		return false
	}
	return ctx.Err() != nil
}
