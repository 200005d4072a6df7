// SPDX-License-Identifier: MIT

// Package linalg - determinant, cofactors and inversion.
//
// Purpose:
//   - Determinant by Laplace expansion along row 0, recursing through
//     Submatrix/Minor/Cofactor. Cost is O(n!), which is fine for the 2..5
//     sized matrices used by graphics transforms.
//   - Inverse as Adjugate / Determinant.
//   - Above CofactorMaxDim both operations switch to gonum's LU factorization
//     (partial pivoting, O(n³)) behind the same contract, so callers never
//     observe the switch beyond floating-point rounding.
//
// Errors:
//   - ErrNonSquare for non-square input.
//   - ErrSingular when the determinant is exactly zero (Inverse only).

package linalg

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for determinant-family error wrapping.
const (
	opMatDet       = "Matrix.Determinant"
	opMatSubmatrix = "Matrix.Submatrix"
	opMatMinor     = "Matrix.Minor"
	opMatCofactor  = "Matrix.Cofactor"
	opMatAdjugate  = "Matrix.Adjugate"
	opMatInverse   = "Matrix.Inverse"
	opMatMinors    = "Matrix.MinorMatrix"
	opMatCofactors = "Matrix.CofactorMatrix"
)

// Determinant returns det(m).
// Errors: ErrNonSquare.
//
// Complexity: O(n!) for n ≤ CofactorMaxDim, O(n³) above.
func (m Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, opErrorf(opMatDet, err)
	}
	if m.r > CofactorMaxDim {
		return mat.Det(m.Dense()), nil
	}

	return m.det(), nil
}

// det is the unchecked cofactor expansion along row 0.
func (m Matrix) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var d float64
	for c := 0; c < m.c; c++ {
		if a := m.at(0, c); a != 0 {
			d += a * m.cofactor(0, c)
		}
	}

	return d
}

// Submatrix returns m with row r and column c removed.
// Errors: ErrOutOfRange for bad indices; ErrBadShape when m has a single row
// or column (the result would be empty).
func (m Matrix) Submatrix(r, c int) (Matrix, error) {
	if err := ValidateIndex(r, m.r); err != nil {
		return Matrix{}, opErrorf(opMatSubmatrix, err)
	}
	if err := ValidateIndex(c, m.c); err != nil {
		return Matrix{}, opErrorf(opMatSubmatrix, err)
	}
	if err := ValidateDim(m.r - 1); err != nil {
		return Matrix{}, opErrorf(opMatSubmatrix, err)
	}
	if err := ValidateDim(m.c - 1); err != nil {
		return Matrix{}, opErrorf(opMatSubmatrix, err)
	}

	return m.submatrix(r, c), nil
}

// submatrix is the unchecked form of Submatrix.
func (m Matrix) submatrix(r, c int) Matrix {
	return generateMatrix(m.r-1, m.c-1, func(rr, cc int) float64 {
		if rr >= r {
			rr++
		}
		if cc >= c {
			cc++
		}

		return m.at(rr, cc)
	})
}

// Minor returns det(Submatrix(r, c)).
// Errors: ErrNonSquare, ErrOutOfRange, ErrBadShape (1×1 input).
func (m Matrix) Minor(r, c int) (float64, error) {
	if err := m.validateCofactorArgs(r, c); err != nil {
		return 0, opErrorf(opMatMinor, err)
	}

	return m.minor(r, c), nil
}

func (m Matrix) minor(r, c int) float64 { return m.submatrix(r, c).det() }

// Cofactor returns (-1)^(r+c) · Minor(r, c).
func (m Matrix) Cofactor(r, c int) (float64, error) {
	if err := m.validateCofactorArgs(r, c); err != nil {
		return 0, opErrorf(opMatCofactor, err)
	}

	return m.cofactor(r, c), nil
}

func (m Matrix) cofactor(r, c int) float64 {
	if (r+c)%2 == 0 {
		return m.minor(r, c)
	}

	return -m.minor(r, c)
}

// validateCofactorArgs checks square, index range and n ≥ 2.
func (m Matrix) validateCofactorArgs(r, c int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateIndex(r, m.r); err != nil {
		return err
	}
	if err := ValidateIndex(c, m.c); err != nil {
		return err
	}

	return ValidateDim(m.r - 1)
}

// MinorMatrix returns the matrix of all minors.
func (m Matrix) MinorMatrix() (Matrix, error) {
	if err := m.validateCofactorArgs(0, 0); err != nil {
		return Matrix{}, opErrorf(opMatMinors, err)
	}

	return generateMatrix(m.r, m.c, m.minor), nil
}

// CofactorMatrix returns the matrix of all cofactors.
func (m Matrix) CofactorMatrix() (Matrix, error) {
	if err := m.validateCofactorArgs(0, 0); err != nil {
		return Matrix{}, opErrorf(opMatCofactors, err)
	}

	return generateMatrix(m.r, m.c, m.cofactor), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// The adjugate of a 1×1 matrix is [1].
// Errors: ErrNonSquare.
func (m Matrix) Adjugate() (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return Matrix{}, opErrorf(opMatAdjugate, err)
	}

	return m.adjugate(), nil
}

func (m Matrix) adjugate() Matrix {
	if m.r == 1 {
		return identity(1)
	}

	return generateMatrix(m.r, m.c, func(r, c int) float64 { return m.cofactor(c, r) })
}

// Inverse returns m⁻¹ = Adjugate / Determinant.
// Errors: ErrNonSquare; ErrSingular when the determinant is exactly zero.
//
// Complexity: O(n·n!) for n ≤ CofactorMaxDim, O(n³) above.
func (m Matrix) Inverse() (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return Matrix{}, opErrorf(opMatInverse, err)
	}
	if m.r > CofactorMaxDim {
		return m.luInverse()
	}
	d := m.det()
	if d == 0 {
		return Matrix{}, opErrorf(opMatInverse, ErrSingular)
	}

	return m.adjugate().Div(d), nil
}

// luInverse inverts through gonum's LU factorization. A mat.Condition error
// only reports ill-conditioning; the computed inverse is still returned.
func (m Matrix) luInverse() (Matrix, error) {
	var lu mat.LU
	lu.Factorize(m.Dense())
	if lu.Det() == 0 {
		return Matrix{}, opErrorf(opMatInverse, ErrSingular)
	}
	var inv mat.Dense
	if err := inv.Inverse(m.Dense()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || isInfCondition(cond) {
			return Matrix{}, opErrorf(opMatInverse, ErrSingular)
		}
	}

	return FromDense(&inv)
}

// isInfCondition reports the infinite condition number gonum uses for an
// exactly singular input.
func isInfCondition(c mat.Condition) bool {
	return math.IsInf(float64(c), 1)
}

// Dense exports m as a freshly allocated gonum *mat.Dense.
func (m Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.RowMajor())
}

// FromDense copies a gonum matrix into an immutable Matrix.
// Errors: ErrBadShape for an empty matrix.
func FromDense(d mat.Matrix) (Matrix, error) {
	r, c := d.Dims()

	return GenerateMatrix(r, c, d.At)
}
