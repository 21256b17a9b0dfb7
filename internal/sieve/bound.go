package sieve

import "math"

// smallRankBound is the pinned limit for ranks below the asymptotic
// regime, where the PNT approximation is unreliable. It is the 5th
// prime, enough to cover every lookup the pin applies to.
const smallRankBound = 11

// UpperBound returns an inclusive limit that, per the prime number
// theorem approximation p(n) ~ n(ln n + ln ln n), exceeds the n-th
// prime (1-based) with very high probability. It is an estimate, not a
// guarantee; callers detect and report shortfall themselves.
func UpperBound(n uint64) uint64 {
	if n < 6 {
		return smallRankBound
	}
	f := float64(n)
	return uint64(math.Ceil(f * (math.Log(f) + math.Log(math.Log(f)))))
}
