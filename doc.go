// Package primego computes the n-th prime number with a segmented
// Sieve of Eratosthenes.
//
// The search space is bounded up front by the prime number theorem
// approximation p(n) ~ n(ln n + ln ln n) and then processed in
// fixed-size segments, so peak memory is one segment regardless of how
// large the bound grows.
//
// # Quick Start
//
// Ranks are zero-based: rank 0 is 2.
//
//	p, _ := primego.NthPrime(9999)
//	fmt.Println(p) // 104729, the 10000th prime
//
// With options:
//
//	ctx := context.Background()
//	f := primego.New(
//	    primego.WithSegmentSize(1 << 16),
//	    primego.WithLogger(primego.NewTextLogger(slog.LevelDebug)),
//	)
//	p, err := f.NthPrime(ctx, 9999)
//
// # Beyond ranks
//
//   - Count reports the number of primes below a limit.
//   - Primes materializes all primes below a limit as a roaring bitmap.
//   - IsPrime answers single-value primality.
//
// # Failure Model
//
// The bound is an estimate, not a guarantee. When it falls short the
// lookup fails with *ErrBoundExceeded instead of silently retrying;
// escalation to a larger bound is a caller policy.
package primego
