package cdlist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// err is nil if successful.
	RecordInsert(err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(err error)

	// RecordSearch is called after each search operation.
	// found is false when the key was absent.
	RecordSearch(found bool)

	// RecordGrowth is called after each arena growth attempt.
	// duration covers the allocate-and-copy; err is nil if successful.
	RecordGrowth(oldCapacity, newCapacity uint32, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(error)                                {}
func (NoopMetricsCollector) RecordRemove(error)                                {}
func (NoopMetricsCollector) RecordSearch(bool)                                 {}
func (NoopMetricsCollector) RecordGrowth(uint32, uint32, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	SearchCount      atomic.Int64
	SearchMisses     atomic.Int64
	GrowthCount      atomic.Int64
	GrowthErrors     atomic.Int64
	GrowthTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(found bool) {
	b.SearchCount.Add(1)
	if !found {
		b.SearchMisses.Add(1)
	}
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(oldCapacity, newCapacity uint32, duration time.Duration, err error) {
	b.GrowthCount.Add(1)
	b.GrowthTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GrowthErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveErrors:   b.RemoveErrors.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchMisses:   b.SearchMisses.Load(),
		GrowthCount:    b.GrowthCount.Load(),
		GrowthErrors:   b.GrowthErrors.Load(),
		GrowthAvgNanos: b.getAvgGrowthNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgGrowthNanos() int64 {
	count := b.GrowthCount.Load()
	if count == 0 {
		return 0
	}
	return b.GrowthTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertErrors   int64
	RemoveCount    int64
	RemoveErrors   int64
	SearchCount    int64
	SearchMisses   int64
	GrowthCount    int64
	GrowthErrors   int64
	GrowthAvgNanos int64
}
