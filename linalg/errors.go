// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency. Operations
// wrap with fmt.Errorf("Op: %w", ErrX); callers use errors.Is.
//
// The three families (dimension, degenerate, domain) each have a root
// sentinel. Narrower sentinels wrap their root, so errors.Is(err, ErrDegenerate)
// holds for ErrZeroLength, ErrZeroNorm and ErrSingular alike.

var (
	// ErrBadShape is returned when a requested dimension is invalid (n<1, rows<1, cols<1)
	// or when a conversion would produce an empty value.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// vectors of different dimension or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrDegenerate signals an input for which the operation has no defined result
	// (zero-length vector, zero quaternion, singular matrix).
	ErrDegenerate = errors.New("linalg: degenerate input")

	// ErrDomain signals an argument outside the operation's domain.
	ErrDomain = errors.New("linalg: argument outside domain")
)

var (
	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrZeroLength is returned by Normalize/SetLength/Angle/Project on a zero vector.
	ErrZeroLength = fmt.Errorf("%w: zero-length vector", ErrDegenerate)

	// ErrZeroNorm is returned by Quaternion.Normalize/Inverse on a zero quaternion.
	ErrZeroNorm = fmt.Errorf("%w: zero-norm quaternion", ErrDegenerate)

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrDegenerate)

	// ErrOutOfRange indicates that an index (component, row, column, axis) is
	// outside valid bounds.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrDomain)
)

// opErrorf wraps err with an operation tag. Use only when err != nil.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
