package primego

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned when a negative rank is requested.
	ErrInvalidRank = errors.New("rank must be non-negative")
)

// ErrBoundExceeded indicates the estimated search limit was exhausted
// before the requested prime was found. The estimate is probabilistic;
// callers wanting resilience retry with their own, larger bound.
type ErrBoundExceeded struct {
	Rank  int64
	Limit uint64
}

func (e *ErrBoundExceeded) Error() string {
	return fmt.Sprintf("bound exceeded: prime of rank %d not found within %d", e.Rank, e.Limit)
}
