// SPDX-License-Identifier: MIT

// Package linalg - Matrix: immutable row-major rows×cols array of float64.
//
// Purpose:
//   - Represent linear, affine and projective transforms. An (n+1)×(n+1)
//     matrix whose last row is (0,…,0,1) is the homogeneous form of an affine
//     transform of n-dimensional space: column n holds the translation and the
//     leading n×n block the (possibly scaled) rotation.
//   - Keep a cache-friendly flat buffer with the explicit index formula r*cols + c.
//   - Never mutate: every operation allocates a fresh Matrix.
//
// Complexity quicksheet:
//   - construction/Add/Scale/Transpose: O(r*c); Mul: O(r*k*c);
//     Apply: O(r*c); Determinant/Inverse: see determinant.go.

package linalg

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for Matrix error wrapping.
const (
	opMatNew      = "Matrix.New"
	opMatAt       = "Matrix.At"
	opMatRow      = "Matrix.Row"
	opMatCol      = "Matrix.Col"
	opMatAdd      = "Matrix.Add"
	opMatSub      = "Matrix.Sub"
	opMatMul      = "Matrix.Mul"
	opMatApply    = "Matrix.Apply"
	opMatPower    = "Matrix.Power"
	opMatTrace    = "Matrix.Trace"
	opMatChange   = "Matrix.ChangeBasis"
	opMatFromRows = "FromRows"
	opMatFromCols = "FromCols"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// Matrix is an immutable rows×cols matrix stored row-major.
// The zero value is 0×0 and not a valid operand.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat storage, len == r*c, never aliased outside the package
}

// generateMatrix is the unchecked core of GenerateMatrix. fn is called in
// row-major order.
func generateMatrix(rows, cols int, fn func(r, c int) float64) Matrix {
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = fn(i, j)
		}
	}

	return Matrix{r: rows, c: cols, data: data}
}

// GenerateMatrix builds a rows×cols matrix whose (r,c) entry is fn(r,c).
// Errors: ErrBadShape when rows<1 or cols<1.
func GenerateMatrix(rows, cols int, fn func(r, c int) float64) (Matrix, error) {
	if err := ValidateDim(rows); err != nil {
		return Matrix{}, opErrorf(opMatNew, err)
	}
	if err := ValidateDim(cols); err != nil {
		return Matrix{}, opErrorf(opMatNew, err)
	}

	return generateMatrix(rows, cols, fn), nil
}

// NewMatrix builds a matrix from explicit row-major contents (copied).
// Errors: ErrBadShape for empty input; ErrDimensionMismatch for ragged rows.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if err := ValidateDim(len(rows)); err != nil {
		return Matrix{}, opErrorf(opMatNew, err)
	}
	cols := len(rows[0])
	if err := ValidateDim(cols); err != nil {
		return Matrix{}, opErrorf(opMatNew, err)
	}
	for _, row := range rows {
		if len(row) != cols {
			return Matrix{}, opErrorf(opMatNew, ErrDimensionMismatch)
		}
	}

	return generateMatrix(len(rows), cols, func(r, c int) float64 { return rows[r][c] }), nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (Matrix, error) {
	return GenerateMatrix(n, n, func(r, c int) float64 { return kronecker(r, c) })
}

// identity is the unchecked form of Identity.
func identity(n int) Matrix {
	return generateMatrix(n, n, func(r, c int) float64 { return kronecker(r, c) })
}

// kronecker returns 1 when r == c and 0 otherwise.
func kronecker(r, c int) float64 {
	if r == c {
		return 1
	}

	return 0
}

// Zeros returns the rows×cols zero matrix.
func Zeros(rows, cols int) (Matrix, error) {
	return GenerateMatrix(rows, cols, func(int, int) float64 { return 0 })
}

// FromRows stacks equal-dimension vectors as the rows of a matrix.
// Errors: ErrBadShape (no rows), ErrDimensionMismatch (ragged).
func FromRows(rows ...Vector) (Matrix, error) {
	if err := ValidateDim(len(rows)); err != nil {
		return Matrix{}, opErrorf(opMatFromRows, err)
	}
	for _, v := range rows {
		if err := ValidateSameDim(rows[0], v); err != nil {
			return Matrix{}, opErrorf(opMatFromRows, err)
		}
	}
	if err := ValidateDim(rows[0].Dim()); err != nil {
		return Matrix{}, opErrorf(opMatFromRows, err)
	}

	return generateMatrix(len(rows), rows[0].Dim(), func(r, c int) float64 { return rows[r].a[c] }), nil
}

// FromCols places equal-dimension vectors as the columns of a matrix.
// Errors: ErrBadShape (no columns), ErrDimensionMismatch (ragged).
func FromCols(cols ...Vector) (Matrix, error) {
	if err := ValidateDim(len(cols)); err != nil {
		return Matrix{}, opErrorf(opMatFromCols, err)
	}
	for _, v := range cols {
		if err := ValidateSameDim(cols[0], v); err != nil {
			return Matrix{}, opErrorf(opMatFromCols, err)
		}
	}
	if err := ValidateDim(cols[0].Dim()); err != nil {
		return Matrix{}, opErrorf(opMatFromCols, err)
	}

	return generateMatrix(cols[0].Dim(), len(cols), func(r, c int) float64 { return cols[c].a[r] }), nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.c }

// Height is an alias of Rows.
func (m Matrix) Height() int { return m.r }

// Width is an alias of Cols.
func (m Matrix) Width() int { return m.c }

// IsSquare reports whether Rows == Cols.
func (m Matrix) IsSquare() bool { return m.r == m.c }

// at reads (r,c) without bounds checks.
func (m Matrix) at(r, c int) float64 { return m.data[r*m.c+c] }

// At returns the entry at (r,c) or ErrOutOfRange.
func (m Matrix) At(r, c int) (float64, error) {
	if err := ValidateIndex(r, m.r); err != nil {
		return 0, opErrorf(opMatAt, err)
	}
	if err := ValidateIndex(c, m.c); err != nil {
		return 0, opErrorf(opMatAt, err)
	}

	return m.at(r, c), nil
}

// Row returns row r as a Vector.
func (m Matrix) Row(r int) (Vector, error) {
	if err := ValidateIndex(r, m.r); err != nil {
		return Vector{}, opErrorf(opMatRow, err)
	}

	return m.row(r), nil
}

func (m Matrix) row(r int) Vector {
	a := make([]float64, m.c)
	copy(a, m.data[r*m.c:(r+1)*m.c])

	return vec(a)
}

// Col returns column c as a Vector.
func (m Matrix) Col(c int) (Vector, error) {
	if err := ValidateIndex(c, m.c); err != nil {
		return Vector{}, opErrorf(opMatCol, err)
	}

	return m.col(c), nil
}

func (m Matrix) col(c int) Vector {
	return generate(m.r, func(i int) float64 { return m.at(i, c) })
}

// RowMajor returns a copy of the flat row-major storage.
func (m Matrix) RowMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders the matrix as "[[a, b], [c, d]]".
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.at(i, j), 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}
	sb.WriteString(_fmtRowClose)

	return sb.String()
}

// addSub computes m + sign·n. Shared by Add and Sub.
func (m Matrix) addSub(n Matrix, sign float64, op string) (Matrix, error) {
	if err := ValidateSameShape(m, n); err != nil {
		return Matrix{}, opErrorf(op, err)
	}
	data := floats.AddScaledTo(make([]float64, len(m.data)), m.data, sign, n.data)

	return Matrix{r: m.r, c: m.c, data: data}, nil
}

// Add returns the elementwise sum m + n.
// Errors: ErrDimensionMismatch.
func (m Matrix) Add(n Matrix) (Matrix, error) { return m.addSub(n, +1, opMatAdd) }

// Sub returns the elementwise difference m - n.
// Errors: ErrDimensionMismatch.
func (m Matrix) Sub(n Matrix) (Matrix, error) { return m.addSub(n, -1, opMatSub) }

// Mul returns the matrix product m·n, of shape m.Rows × n.Cols.
// Errors: ErrDimensionMismatch when m.Cols != n.Rows.
//
// Complexity: O(r*k*c). Loop order i-k-j streams both operands row-wise.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	if err := ValidateMulShape(m, n); err != nil {
		return Matrix{}, opErrorf(opMatMul, err)
	}

	return m.mul(n), nil
}

// mul is the unchecked product kernel.
func (m Matrix) mul(n Matrix) Matrix {
	data := make([]float64, m.r*n.c)
	var aik float64
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			aik = m.at(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < n.c; j++ {
				data[i*n.c+j] += aik * n.at(k, j)
			}
		}
	}

	return Matrix{r: m.r, c: n.c, data: data}
}

// Apply multiplies m by the column vector v in one of two modes:
//
//   - dim(v) == Cols: plain linear map, result[i] = row(i)·v.
//   - dim(v) == Cols-1: v is a cartesian point. It is embedded with w = 1,
//     mapped, and projected back to cartesian coordinates. This lets an
//     (n+1)×(n+1) affine or projective matrix act on n-dimensional points.
//
// Errors: ErrDimensionMismatch for any other dimension; ErrBadShape when the
// homogeneous result cannot be projected (a 1-row matrix).
func (m Matrix) Apply(v Vector) (Vector, error) {
	switch v.Dim() {
	case m.c:
		return m.apply(v), nil
	case m.c - 1:
		out, err := m.apply(v.ToHomogeneous()).ToCartesian()
		if err != nil {
			return Vector{}, opErrorf(opMatApply, err)
		}

		return out, nil
	default:
		return Vector{}, opErrorf(opMatApply, ErrDimensionMismatch)
	}
}

// apply is the unchecked linear kernel; dim(v) == m.c.
func (m Matrix) apply(v Vector) Vector {
	return generate(m.r, func(i int) float64 {
		var s float64
		for j := 0; j < m.c; j++ {
			s += m.at(i, j) * v.a[j]
		}

		return s
	})
}

// Scale returns m with every entry multiplied by s.
func (m Matrix) Scale(s float64) Matrix {
	return Matrix{r: m.r, c: m.c, data: floats.ScaleTo(make([]float64, len(m.data)), s, m.data)}
}

// Div returns m with every entry divided by s (IEEE semantics for s == 0).
func (m Matrix) Div(s float64) Matrix { return m.Scale(1 / s) }

// Negate returns -m.
func (m Matrix) Negate() Matrix { return m.Scale(-1) }

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	return generateMatrix(m.c, m.r, func(r, c int) float64 { return m.at(c, r) })
}

// Power returns m raised to the integer power k:
// k == 0 → identity, k < 0 → Inverse().Power(-k), otherwise repeated product.
// Errors: ErrNonSquare; ErrSingular for k < 0 on a singular matrix.
func (m Matrix) Power(k int) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return Matrix{}, opErrorf(opMatPower, err)
	}
	base := m
	if k < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return Matrix{}, opErrorf(opMatPower, err)
		}
		base, k = inv, -k
	}
	if k == 0 {
		return identity(m.r), nil
	}
	out := base
	for i := 1; i < k; i++ {
		out = base.mul(out)
	}

	return out, nil
}

// Trace returns the sum of the diagonal entries.
// Errors: ErrNonSquare.
func (m Matrix) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, opErrorf(opMatTrace, err)
	}
	var t float64
	for i := 0; i < m.r; i++ {
		t += m.at(i, i)
	}

	return t, nil
}

// ChangeBasis re-expresses the transform m in the coordinate system whose
// basis vectors are the columns of basis: basis⁻¹ · m.
func (m Matrix) ChangeBasis(basis Matrix) (Matrix, error) {
	inv, err := basis.Inverse()
	if err != nil {
		return Matrix{}, opErrorf(opMatChange, err)
	}
	out, err := inv.Mul(m)
	if err != nil {
		return Matrix{}, opErrorf(opMatChange, err)
	}

	return out, nil
}

// ApproxEqual reports whether m and n have the same shape and all entries
// agree within the configured epsilon.
func (m Matrix) ApproxEqual(n Matrix, opts ...Option) bool {
	if m.r != n.r || m.c != n.c {
		return false
	}

	return vec(m.data).ApproxEqual(vec(n.data), opts...)
}
