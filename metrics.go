package binvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdjust is called after each Hamming adjustment.
	// flips is the number of bits changed, probes the number of positions visited.
	RecordAdjust(flips, probes int, err error)

	// RecordOrthogonalize is called after each Orthogonalize call over count vectors.
	RecordOrthogonalize(count int, duration time.Duration, err error)

	// RecordIntersect is called after each fuzzy intersection.
	// disputed is the number of positions where the operands disagreed.
	RecordIntersect(disputed int, duration time.Duration)

	// RecordCombine is called after each weighted combination.
	RecordCombine(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdjust(int, int, error)                  {}
func (NoopMetricsCollector) RecordOrthogonalize(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIntersect(int, time.Duration)            {}
func (NoopMetricsCollector) RecordCombine(time.Duration, error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AdjustCount             atomic.Int64
	AdjustErrors            atomic.Int64
	AdjustFlips             atomic.Int64
	AdjustProbes            atomic.Int64
	OrthogonalizeCount      atomic.Int64
	OrthogonalizeErrors     atomic.Int64
	OrthogonalizeVectors    atomic.Int64
	OrthogonalizeTotalNanos atomic.Int64
	IntersectCount          atomic.Int64
	IntersectDisputed       atomic.Int64
	IntersectTotalNanos     atomic.Int64
	CombineCount            atomic.Int64
	CombineErrors           atomic.Int64
	CombineTotalNanos       atomic.Int64
}

// RecordAdjust implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdjust(flips, probes int, err error) {
	b.AdjustCount.Add(1)
	b.AdjustFlips.Add(int64(flips))
	b.AdjustProbes.Add(int64(probes))
	if err != nil {
		b.AdjustErrors.Add(1)
	}
}

// RecordOrthogonalize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOrthogonalize(count int, duration time.Duration, err error) {
	b.OrthogonalizeCount.Add(1)
	b.OrthogonalizeVectors.Add(int64(count))
	b.OrthogonalizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OrthogonalizeErrors.Add(1)
	}
}

// RecordIntersect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntersect(disputed int, duration time.Duration) {
	b.IntersectCount.Add(1)
	b.IntersectDisputed.Add(int64(disputed))
	b.IntersectTotalNanos.Add(duration.Nanoseconds())
}

// RecordCombine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCombine(duration time.Duration, err error) {
	b.CombineCount.Add(1)
	b.CombineTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CombineErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AdjustCount:           b.AdjustCount.Load(),
		AdjustErrors:          b.AdjustErrors.Load(),
		AdjustFlips:           b.AdjustFlips.Load(),
		AdjustProbes:          b.AdjustProbes.Load(),
		OrthogonalizeCount:    b.OrthogonalizeCount.Load(),
		OrthogonalizeErrors:   b.OrthogonalizeErrors.Load(),
		OrthogonalizeVectors:  b.OrthogonalizeVectors.Load(),
		OrthogonalizeAvgNanos: avg(b.OrthogonalizeTotalNanos.Load(), b.OrthogonalizeCount.Load()),
		IntersectCount:        b.IntersectCount.Load(),
		IntersectDisputed:     b.IntersectDisputed.Load(),
		IntersectAvgNanos:     avg(b.IntersectTotalNanos.Load(), b.IntersectCount.Load()),
		CombineCount:          b.CombineCount.Load(),
		CombineErrors:         b.CombineErrors.Load(),
		CombineAvgNanos:       avg(b.CombineTotalNanos.Load(), b.CombineCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AdjustCount           int64
	AdjustErrors          int64
	AdjustFlips           int64
	AdjustProbes          int64
	OrthogonalizeCount    int64
	OrthogonalizeErrors   int64
	OrthogonalizeVectors  int64
	OrthogonalizeAvgNanos int64
	IntersectCount        int64
	IntersectDisputed     int64
	IntersectAvgNanos     int64
	CombineCount          int64
	CombineErrors         int64
	CombineAvgNanos       int64
}
