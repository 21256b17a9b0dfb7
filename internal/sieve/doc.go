// Package sieve implements a segmented Sieve of Eratosthenes.
//
// The integer line is processed in fixed-size segments so peak memory
// stays proportional to the segment length, never to the search bound.
// Each segment is a compact bitset that is generated, scanned and
// discarded within a single pass.
package sieve
