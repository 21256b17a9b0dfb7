package sieve

import "github.com/bits-and-blooms/bitset"

// Segment is the primality marking for the absolute range
// [offset, offset+length). It lives for exactly one pass: generated,
// scanned, then discarded.
//
// The bitset tracks composites, so the zero bitset means "everything
// prime" and generation needs no set-all initialization.
type Segment struct {
	offset    uint64
	length    int
	composite *bitset.BitSet
}

func newSegment(offset uint64, length int) *Segment {
	return &Segment{
		offset:    offset,
		length:    length,
		composite: bitset.New(uint(length)),
	}
}

// Offset returns the absolute value of the segment's first entry.
func (s *Segment) Offset() uint64 { return s.offset }

// Len returns the number of entries in the segment.
func (s *Segment) Len() int { return s.length }

// IsPrime reports whether the entry at local index i is prime.
// Out-of-range indices are not prime.
func (s *Segment) IsPrime(i int) bool {
	if i < 0 || i >= s.length {
		return false
	}
	return !s.composite.Test(uint(i))
}

// Count returns the number of primes in the segment.
func (s *Segment) Count() int {
	return s.length - int(s.composite.Count())
}

// FindNth scans the segment in increasing order and returns the
// absolute value of the prime with the given zero-based rank among this
// segment's primes. ok is false when the segment holds fewer primes;
// the caller continues with the next segment, its target reduced by
// Count().
func (s *Segment) FindNth(target int64) (prime uint64, ok bool) {
	if target < 0 {
		return 0, false
	}
	for i := uint(0); i < uint(s.length); {
		j, found := s.composite.NextClear(i)
		if !found || j >= uint(s.length) {
			return 0, false
		}
		if target == 0 {
			return s.offset + uint64(j), true
		}
		target--
		i = j + 1
	}
	return 0, false
}
