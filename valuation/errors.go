// Package valuation: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// method context via fmt.Errorf("...: %w", ErrX)); callers match them
// with errors.Is. No operation panics on user-triggered conditions.

package valuation

import "errors"

var (
	// ErrBadDimension is returned when a matrix dimension is < 1.
	ErrBadDimension = errors.New("valuation: dimension must be >= 1")

	// ErrNonSquare is returned when a supplied valuation matrix is not square.
	ErrNonSquare = errors.New("valuation: matrix is not square")

	// ErrNegativeValue is returned when a valuation entry (or the requested
	// maximum valuation) is negative; valuations are non-negative integers.
	ErrNegativeValue = errors.New("valuation: negative valuation")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	// Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("valuation: index out of range")

	// ErrPriceLength indicates a candidate price vector whose length does
	// not match the number of products.
	ErrPriceLength = errors.New("valuation: price vector length mismatch")
)
