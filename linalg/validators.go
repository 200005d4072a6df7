// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and index checks.
//   - Keep kernels minimal by delegating dimension/square/index checks here.
//   - Return plain sentinel errors tagged with the validator name so call sites
//     can wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on the success path.

package linalg

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDim ensures a requested vector dimension or matrix extent is ≥ 1.
// Returns ErrBadShape otherwise.
func ValidateDim(n int) error {
	if n < 1 {
		return validatorErrorf("ValidateDim", ErrBadShape)
	}

	return nil
}

// ValidateSameDim ensures vectors a and b have the same dimension.
// Returns ErrDimensionMismatch otherwise.
func ValidateSameDim(a, b Vector) error {
	if a.Dim() != b.Dim() {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDimIs ensures v has exactly dimension n.
// Used by 3-D only operations (Cross, quaternion vector parts).
func ValidateDimIs(v Vector, n int) error {
	if v.Dim() != n {
		return validatorErrorf("ValidateDimIs", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Returns ErrNonSquare, which also matches ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulShape ensures a·b is defined (a.Cols == b.Rows).
func ValidateMulShape(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
// Returns ErrOutOfRange otherwise.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
