package primego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordNthPrime is called after each rank lookup.
	// duration is the total time taken, err is nil if successful.
	RecordNthPrime(duration time.Duration, err error)

	// RecordCount is called after each prime-counting operation.
	RecordCount(duration time.Duration, err error)

	// RecordSegment is called after each sieved segment.
	// length is the segment length, primes the number found in it.
	RecordSegment(length, primes int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordNthPrime(time.Duration, error)   {}
func (NoopMetricsCollector) RecordCount(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSegment(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Safe for concurrent use.
type BasicMetricsCollector struct {
	NthPrimeCount      atomic.Int64
	NthPrimeErrors     atomic.Int64
	NthPrimeTotalNanos atomic.Int64
	CountCount         atomic.Int64
	CountErrors        atomic.Int64
	CountTotalNanos    atomic.Int64
	SegmentCount       atomic.Int64
	SegmentPrimes      atomic.Int64
	SegmentTotalNanos  atomic.Int64
}

func (m *BasicMetricsCollector) RecordNthPrime(duration time.Duration, err error) {
	m.NthPrimeCount.Add(1)
	if err != nil {
		m.NthPrimeErrors.Add(1)
	}
	m.NthPrimeTotalNanos.Add(int64(duration))
}

func (m *BasicMetricsCollector) RecordCount(duration time.Duration, err error) {
	m.CountCount.Add(1)
	if err != nil {
		m.CountErrors.Add(1)
	}
	m.CountTotalNanos.Add(int64(duration))
}

func (m *BasicMetricsCollector) RecordSegment(length, primes int, duration time.Duration) {
	m.SegmentCount.Add(1)
	m.SegmentPrimes.Add(int64(primes))
	m.SegmentTotalNanos.Add(int64(duration))
}
