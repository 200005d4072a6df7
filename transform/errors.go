// SPDX-License-Identifier: MIT
// Package transform: sentinel errors.
// The transform layer reuses the linalg taxonomy; the only sentinel it adds
// wraps linalg.ErrDimensionMismatch so callers can match either.

package transform

import (
	"fmt"

	"github.com/katalvlaran/vecmath/linalg"
)

// ErrNotAffine is returned when a matrix cannot be the homogeneous form of a
// transform: it is not square or smaller than 2×2, or (for ToAff-style
// conversions) its last row is not (0,…,0,1).
var ErrNotAffine = fmt.Errorf("%w: not a homogeneous transform", linalg.ErrDimensionMismatch)

// opErrorf wraps err with an operation tag. Use only when err != nil.
func opErrorf(op string, err error) error {
	return fmt.Errorf("transform.%s: %w", op, err)
}

// validateHomogeneous ensures m is square with at least 2 rows, i.e. it can
// describe a transform of (Rows-1)-dimensional space.
func validateHomogeneous(m linalg.Matrix) error {
	if !m.IsSquare() || m.Rows() < 2 {
		return ErrNotAffine
	}

	return nil
}

// validateSpace ensures m is the (n+1)×(n+1) homogeneous form for space
// dimension n.
func validateSpace(m linalg.Matrix, n int) error {
	if err := validateHomogeneous(m); err != nil {
		return err
	}
	if m.Rows() != n+1 {
		return linalg.ErrDimensionMismatch
	}

	return nil
}

// IsAffine reports whether m is square, at least 2×2, and its last row is
// (0,…,0,1) within the configured epsilon.
func IsAffine(m linalg.Matrix, opts ...linalg.Option) bool {
	if validateHomogeneous(m) != nil {
		return false
	}
	n := m.Rows() - 1
	last, _ := m.Row(n) // n is in range after validateHomogeneous
	want, _ := linalg.Basis(n, n+1)

	return last.ApproxEqual(want, opts...)
}
