package sieve

// Generate runs one sieve pass over the absolute range
// [offset, offset+length) and returns its primality marking.
//
// Divisors run from 2 while i*i < offset+length. A divisor that falls
// inside the segment and is already marked composite is skipped:
// segments are sieved in increasing offset order, so every smaller
// prime has already struck its multiples. Marking starts at the first
// multiple of i that is >= both i*i and offset.
func Generate(offset uint64, length int) *Segment {
	s := newSegment(offset, length)
	upper := offset + uint64(length)

	// 0 and 1 are not prime.
	for v := offset; v < 2 && v < upper; v++ {
		s.composite.Set(uint(v - offset))
	}

	for i := uint64(2); i*i < upper; i++ {
		if i >= offset && s.composite.Test(uint(i-offset)) {
			continue
		}

		start := i * i
		if first := (offset + i - 1) / i * i; first > start {
			start = first
		}
		for j := start; j < upper; j += i {
			s.composite.Set(uint(j - offset))
		}
	}

	return s
}
