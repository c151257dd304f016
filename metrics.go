package seriesgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBake is called after each forced evaluation (explicit or implied
	// by a terminal operation). pairs is the number of pairs materialized,
	// duration is the total time taken, err is nil if successful.
	RecordBake(pairs int, duration time.Duration, err error)

	// RecordSelector is called once per selector invocation.
	RecordSelector()

	// RecordInflate is called after each inflate operation.
	RecordInflate(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBake(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSelector()                         {}
func (NoopMetricsCollector) RecordInflate(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BakeCount      atomic.Int64
	BakeErrors     atomic.Int64
	BakePairs      atomic.Int64
	BakeTotalNanos atomic.Int64
	SelectorCalls  atomic.Int64
	InflateCount   atomic.Int64
	InflateErrors  atomic.Int64
	InflateRows    atomic.Int64
}

// RecordBake implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBake(pairs int, duration time.Duration, err error) {
	b.BakeCount.Add(1)
	b.BakeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BakeErrors.Add(1)
		return
	}
	b.BakePairs.Add(int64(pairs))
}

// RecordSelector implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelector() {
	b.SelectorCalls.Add(1)
}

// RecordInflate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInflate(rows int, duration time.Duration, err error) {
	b.InflateCount.Add(1)
	if err != nil {
		b.InflateErrors.Add(1)
		return
	}
	b.InflateRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BakeCount:     b.BakeCount.Load(),
		BakeErrors:    b.BakeErrors.Load(),
		BakePairs:     b.BakePairs.Load(),
		BakeAvgNanos:  b.getAvgBakeNanos(),
		SelectorCalls: b.SelectorCalls.Load(),
		InflateCount:  b.InflateCount.Load(),
		InflateErrors: b.InflateErrors.Load(),
		InflateRows:   b.InflateRows.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBakeNanos() int64 {
	count := b.BakeCount.Load()
	if count == 0 {
		return 0
	}
	return b.BakeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BakeCount     int64
	BakeErrors    int64
	BakePairs     int64
	BakeAvgNanos  int64
	SelectorCalls int64
	InflateCount  int64
	InflateErrors int64
	InflateRows   int64
}
