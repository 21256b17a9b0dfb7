package sieve

import "testing"

func TestUpperBound_SmallRanks(t *testing.T) {
	for n := uint64(0); n < 6; n++ {
		if got := UpperBound(n); got != 11 {
			t.Errorf("UpperBound(%d): expected 11, got %d", n, got)
		}
	}
}

func TestUpperBound_CoversKnownPrimes(t *testing.T) {
	// p(n) is the n-th prime, 1-based. The bound is inclusive, so it
	// must be >= p(n) for the search to succeed without shortfall.
	known := map[uint64]uint64{
		5:      11,
		6:      13,
		10:     29,
		100:    541,
		1000:   7919,
		10000:  104729,
		100000: 1299709,
	}
	for n, p := range known {
		if got := UpperBound(n); got < p {
			t.Errorf("UpperBound(%d) = %d, below the %d-th prime %d", n, got, n, p)
		}
	}
}

func TestUpperBound_Monotonic(t *testing.T) {
	prev := uint64(0)
	for n := uint64(6); n < 10000; n += 13 {
		got := UpperBound(n)
		if got < prev {
			t.Fatalf("UpperBound(%d) = %d, below previous %d", n, got, prev)
		}
		if got < n {
			t.Errorf("UpperBound(%d) = %d, below the rank itself", n, got)
		}
		prev = got
	}
}
