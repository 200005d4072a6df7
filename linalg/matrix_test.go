// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for Matrix construction,
// arithmetic and the dual-mode Apply.
package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vecmath/linalg"
)

// TestNewMatrix_Validation checks empty and ragged input.
func TestNewMatrix_Validation(t *testing.T) {
	t.Parallel()

	_, err := linalg.NewMatrix(nil)
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	_, err = linalg.NewMatrix([][]float64{{}})
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	_, err = linalg.NewMatrix([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.GenerateMatrix(2, 0, func(int, int) float64 { return 0 })
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	_, err = linalg.Identity(0)
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	rows := [][]float64{{1, 2}, {3, 4}}
	m := mustMat(t, rows)
	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestMatrix_Accessors covers shape queries, At, Row, Col and String.
func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()

	m := mustMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, m.Rows(), m.Height())
	assert.Equal(t, m.Cols(), m.Width())
	assert.False(t, m.IsSquare())

	x, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, x)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, linalg.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, linalg.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	requireVecNear(t, []float64{4, 5, 6}, row, 0)

	col, err := m.Col(2)
	require.NoError(t, err)
	requireVecNear(t, []float64{3, 6}, col, 0)

	_, err = m.Col(3)
	assert.ErrorIs(t, err, linalg.ErrOutOfRange)

	assert.Equal(t, "[[1, 2, 3], [4, 5, 6]]", m.String())

	flat := m.RowMajor()
	flat[0] = 99
	x, _ = m.At(0, 0)
	assert.Equal(t, 1.0, x)
}

// TestMatrix_FromRowsCols checks stacking and the ragged guard.
func TestMatrix_FromRowsCols(t *testing.T) {
	t.Parallel()

	a, b := mustVec(t, 1, 2), mustVec(t, 3, 4)

	byRows, err := linalg.FromRows(a, b)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{1, 2}, {3, 4}}), byRows, 0)

	byCols, err := linalg.FromCols(a, b)
	require.NoError(t, err)
	requireMatNear(t, byRows.Transpose(), byCols, 0)

	_, err = linalg.FromRows()
	assert.ErrorIs(t, err, linalg.ErrBadShape)
	_, err = linalg.FromCols(a, mustVec(t, 1, 2, 3))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	z, err := linalg.Zeros(2, 3)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 6), z.RowMajor())
}

// TestMatrix_Arithmetic covers Add/Sub/Scale/Div/Negate/Transpose.
func TestMatrix_Arithmetic(t *testing.T) {
	t.Parallel()

	a := mustMat(t, [][]float64{{1, 2}, {3, 4}})
	b := mustMat(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{6, 8}, {10, 12}}), sum, 0)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{-4, -4}, {-4, -4}}), diff, 0)

	requireMatNear(t, mustMat(t, [][]float64{{2, 4}, {6, 8}}), a.Scale(2), 0)
	requireMatNear(t, mustMat(t, [][]float64{{0.5, 1}, {1.5, 2}}), a.Div(2), 0)
	requireMatNear(t, mustMat(t, [][]float64{{-1, -2}, {-3, -4}}), a.Negate(), 0)
	requireMatNear(t, mustMat(t, [][]float64{{1, 3}, {2, 4}}), a.Transpose(), 0)

	// operands are left untouched
	requireMatNear(t, mustMat(t, [][]float64{{1, 2}, {3, 4}}), a, 0)
	requireMatNear(t, mustMat(t, [][]float64{{5, 6}, {7, 8}}), b, 0)

	rect := mustMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	twice, err := rect.Add(rect)
	require.NoError(t, err)
	requireMatNear(t, rect.Scale(2), twice, 0)
	none, err := rect.Sub(rect)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{0, 0, 0}, {0, 0, 0}}), none, 0)

	_, err = a.Add(mustMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = a.Sub(mustMat(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestMatrix_Mul checks a rectangular product and the shape guard.
func TestMatrix_Mul(t *testing.T) {
	t.Parallel()

	a := mustMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustMat(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{58, 64}, {139, 154}}), p, 0)

	_, err = a.Mul(a)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	// identity is neutral on both sides
	left, err := mustIdentity(t, 2).Mul(a)
	require.NoError(t, err)
	requireMatNear(t, a, left, 0)
	right, err := a.Mul(mustIdentity(t, 3))
	require.NoError(t, err)
	requireMatNear(t, a, right, 0)
}

// TestMatrix_MulAgainstGonum compares the product kernel with gonum on
// random rectangular operands.
func TestMatrix_MulAgainstGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		r, k, c := 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6)
		a, err := linalg.GenerateMatrix(r, k, func(int, int) float64 { return rng.NormFloat64() })
		require.NoError(t, err)
		b, err := linalg.GenerateMatrix(k, c, func(int, int) float64 { return rng.NormFloat64() })
		require.NoError(t, err)

		got, err := a.Mul(b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(a.Dense(), b.Dense())
		fromGonum, err := linalg.FromDense(&want)
		require.NoError(t, err)
		requireMatNear(t, fromGonum, got, 1e-12)
	}
}

// TestMatrix_Apply covers the linear and homogeneous modes.
func TestMatrix_Apply(t *testing.T) {
	t.Parallel()

	tr := mustMat(t, [][]float64{
		{1, 0, 5},
		{0, 1, 6},
		{0, 0, 1},
	})

	linear, err := tr.Apply(mustVec(t, 1, 2, 1))
	require.NoError(t, err)
	requireVecNear(t, []float64{6, 8, 1}, linear, 0)

	point, err := tr.Apply(mustVec(t, 1, 2))
	require.NoError(t, err)
	requireVecNear(t, []float64{6, 8}, point, 0)

	_, err = tr.Apply(mustVec(t, 1))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = tr.Apply(mustVec(t, 1, 2, 3, 4))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	// projective: w is divided out
	proj := mustMat(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	})
	half, err := proj.Apply(mustVec(t, 4, 6))
	require.NoError(t, err)
	requireVecNear(t, []float64{2, 3}, half, 0)

	// a single-row result cannot be projected
	row := mustMat(t, [][]float64{{1, 2}})
	_, err = row.Apply(mustVec(t, 3))
	assert.ErrorIs(t, err, linalg.ErrBadShape)

	// rectangular linear map
	rect := mustMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	out, err := rect.Apply(mustVec(t, 1, 0, -1))
	require.NoError(t, err)
	requireVecNear(t, []float64{-2, -2}, out, 0)
}

// TestMatrix_Power covers positive, zero and negative exponents.
func TestMatrix_Power(t *testing.T) {
	t.Parallel()

	shear := mustMat(t, [][]float64{{1, 1}, {0, 1}})

	p3, err := shear.Power(3)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{1, 3}, {0, 1}}), p3, 0)

	p0, err := shear.Power(0)
	require.NoError(t, err)
	requireMatNear(t, mustIdentity(t, 2), p0, 0)

	pm2, err := shear.Power(-2)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{1, -2}, {0, 1}}), pm2, tol)

	_, err = mustMat(t, [][]float64{{1, 2}, {2, 4}}).Power(-1)
	assert.ErrorIs(t, err, linalg.ErrSingular)

	_, err = mustMat(t, [][]float64{{1, 2}}).Power(2)
	assert.ErrorIs(t, err, linalg.ErrNonSquare)
}

// TestMatrix_Trace checks the diagonal sum.
func TestMatrix_Trace(t *testing.T) {
	t.Parallel()

	tr, err := mustMat(t, [][]float64{{1, 2}, {3, 4}}).Trace()
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)

	_, err = mustMat(t, [][]float64{{1, 2}}).Trace()
	assert.ErrorIs(t, err, linalg.ErrNonSquare)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestMatrix_ChangeBasis re-expresses a transform in a scaled basis.
func TestMatrix_ChangeBasis(t *testing.T) {
	t.Parallel()

	basis := mustMat(t, [][]float64{{2, 0}, {0, 2}})
	m := mustMat(t, [][]float64{{4, 0}, {0, 6}})

	got, err := m.ChangeBasis(basis)
	require.NoError(t, err)
	requireMatNear(t, mustMat(t, [][]float64{{2, 0}, {0, 3}}), got, tol)

	_, err = m.ChangeBasis(mustMat(t, [][]float64{{0, 0}, {0, 0}}))
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

// TestMatrix_ApproxEqual checks shape and tolerance handling.
func TestMatrix_ApproxEqual(t *testing.T) {
	t.Parallel()

	a := mustMat(t, [][]float64{{1, 2}, {3, 4}})
	b := mustMat(t, [][]float64{{1, 2}, {3, 4 + 1e-4}})

	assert.True(t, a.ApproxEqual(a))
	assert.False(t, a.ApproxEqual(b))
	assert.True(t, a.ApproxEqual(b, linalg.WithEpsilon(1e-3)))
	assert.False(t, a.ApproxEqual(a.Scale(2)))
	assert.False(t, a.ApproxEqual(mustMat(t, [][]float64{{1, 2, 3, 4}})))
}
