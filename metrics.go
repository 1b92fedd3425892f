package rowdex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordFind is called after each lookup. found reports whether a row
	// matched, err is nil if the argument normalized cleanly.
	RecordFind(duration time.Duration, found bool, err error)

	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration, err error)

	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, err error)

	// RecordReindex is called after each full index rebuild.
	// rows is the number of positions sorted.
	RecordReindex(rows int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFind(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error)     {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)     {}
func (NoopMetricsCollector) RecordReindex(int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FindCount         atomic.Int64
	FindMisses        atomic.Int64
	FindErrors        atomic.Int64
	FindTotalNanos    atomic.Int64
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	DeleteCount       atomic.Int64
	DeleteErrors      atomic.Int64
	DeleteTotalNanos  atomic.Int64
	ReindexCount      atomic.Int64
	ReindexRows       atomic.Int64
	ReindexTotalNanos atomic.Int64
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(duration time.Duration, found bool, err error) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.FindMisses.Add(1)
	}
	if err != nil {
		b.FindErrors.Add(1)
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	b.DeleteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordReindex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReindex(rows int, duration time.Duration) {
	b.ReindexCount.Add(1)
	b.ReindexRows.Add(int64(rows))
	b.ReindexTotalNanos.Add(duration.Nanoseconds())
}
