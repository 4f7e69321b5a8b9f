package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned (wrapped in a *RangeError) by the checked
// accessors when an index falls outside the live elements.
var ErrOutOfRange = errors.New("out of range")

// RangeError describes a rejected index.
type RangeError struct {
	Op    string // operation that rejected the index, e.g. "At"
	Index int
	Bound int // exclusive upper bound of valid indices
}

// Error returns the operation, the rejected index and the valid range.
func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("vector: %s: index %d out of range [0:%d)", e.Op, e.Index, e.Bound)
}

// Unwrap returns ErrOutOfRange so errors.Is matches any RangeError.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func rangeError(op string, index, bound int) error {
	return &RangeError{Op: op, Index: index, Bound: bound}
}
