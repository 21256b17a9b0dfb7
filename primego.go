package primego

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/primego/internal/sieve"
)

// Finder locates primes by rank using a segmented Sieve of
// Eratosthenes. It holds no state between calls and is safe for
// concurrent use.
type Finder struct {
	segmentSize uint64
	parallelism int
	logger      *Logger
	metrics     MetricsCollector
}

// New creates a Finder.
func New(optFns ...Option) *Finder {
	opts := options{
		segmentSize:      DefaultSegmentSize,
		parallelism:      1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Finder{
		segmentSize: opts.segmentSize,
		parallelism: opts.parallelism,
		logger:      opts.logger,
		metrics:     opts.metricsCollector,
	}
}

// NthPrime returns the prime with zero-based rank n, so NthPrime(0) is 2.
//
// The search space is bounded by a prime-number-theorem estimate and
// sieved one segment at a time; peak memory is one segment regardless
// of n. A shortfall of the estimate surfaces as *ErrBoundExceeded and
// is never retried internally.
func (f *Finder) NthPrime(ctx context.Context, n int64) (prime uint64, err error) {
	start := time.Now()
	defer func() { f.metrics.RecordNthPrime(time.Since(start), err) }()

	if n < 0 {
		return 0, ErrInvalidRank
	}
	// The smallest rank never needs a sieve pass.
	if n == 0 {
		return 2, nil
	}

	limit := sieve.UpperBound(uint64(n) + 1)
	logger := f.logger.WithRank(n).WithLimit(limit)

	var (
		offset     uint64
		primeCount int64
	)
	// The bound is inclusive, hence limit+1 as the exclusive end.
	for end := limit + 1; offset < end; {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		length := min(end-offset, f.segmentSize)
		seg := f.generate(offset, int(length))

		if p, ok := seg.FindNth(n - primeCount); ok {
			logger.WithOffset(offset).Debug("prime located", "prime", p)
			return p, nil
		}

		primeCount += int64(seg.Count())
		logger.WithOffset(offset).Debug("segment exhausted", "found", primeCount)
		offset += length
	}

	return 0, &ErrBoundExceeded{Rank: n, Limit: limit}
}

// Count returns the number of primes strictly below limit.
//
// Per-segment tallies are order-independent, so with WithParallelism
// greater than one the segments are sieved concurrently, bounded to
// that many passes in flight.
func (f *Finder) Count(ctx context.Context, limit uint64) (count uint64, err error) {
	start := time.Now()
	defer func() { f.metrics.RecordCount(time.Since(start), err) }()

	if f.parallelism > 1 {
		return f.countParallel(ctx, limit)
	}

	var total uint64
	for offset := uint64(0); offset < limit; {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		length := min(limit-offset, f.segmentSize)
		total += uint64(f.generate(offset, int(length)).Count())
		offset += length
	}
	return total, nil
}

func (f *Finder) countParallel(ctx context.Context, limit uint64) (uint64, error) {
	g, ctx := errgroup.WithContext(ctx)
	// Peak memory stays at parallelism times one segment.
	g.SetLimit(f.parallelism)

	var total atomic.Uint64
	for offset := uint64(0); offset < limit; {
		off := offset
		length := min(limit-offset, f.segmentSize)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			total.Add(uint64(f.generate(off, int(length)).Count()))
			return nil
		})

		offset += length
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// Primes returns the set of primes strictly below limit as a
// compressed bitmap. The result accumulates by nature; working memory
// beyond it is still a single segment.
func (f *Finder) Primes(ctx context.Context, limit uint64) (*roaring64.Bitmap, error) {
	out := roaring64.New()
	for offset := uint64(0); offset < limit; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		length := min(limit-offset, f.segmentSize)
		seg := f.generate(offset, int(length))
		for i := 0; i < seg.Len(); i++ {
			if seg.IsPrime(i) {
				out.Add(offset + uint64(i))
			}
		}
		offset += length
	}
	return out, nil
}

// IsPrime reports whether v is prime. It sieves a single-entry
// segment, costing O(sqrt v).
func (f *Finder) IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	return f.generate(v, 1).IsPrime(0)
}

func (f *Finder) generate(offset uint64, length int) *sieve.Segment {
	start := time.Now()
	seg := sieve.Generate(offset, length)
	f.metrics.RecordSegment(seg.Len(), seg.Count(), time.Since(start))
	return seg
}

var defaultFinder = New()

// NthPrime returns the prime with zero-based rank n using a Finder
// with default options.
func NthPrime(n int64) (uint64, error) {
	return defaultFinder.NthPrime(context.Background(), n)
}
