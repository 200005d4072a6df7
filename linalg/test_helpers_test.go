// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion helpers.
//   - Keep random data seeded so failures reproduce.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmath/linalg"
)

// tol is the default absolute tolerance for exact-arithmetic style checks.
const tol = 1e-9

// mustVec builds a vector or fails the test.
func mustVec(t testing.TB, xs ...float64) linalg.Vector {
	t.Helper()
	v, err := linalg.NewVector(xs...)
	require.NoError(t, err)

	return v
}

// mustMat builds a matrix or fails the test.
func mustMat(t testing.TB, rows [][]float64) linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity builds I_n or fails the test.
func mustIdentity(t testing.TB, n int) linalg.Matrix {
	t.Helper()
	m, err := linalg.Identity(n)
	require.NoError(t, err)

	return m
}

// requireVecNear fails unless got matches want componentwise within eps.
func requireVecNear(t testing.TB, want []float64, got linalg.Vector, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Dim(), "dimension")
	require.InDeltaSlice(t, want, got.Components(), eps)
}

// requireMatNear fails unless got matches want entrywise within eps.
func requireMatNear(t testing.TB, want, got linalg.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.InDeltaSlice(t, want.RowMajor(), got.RowMajor(), eps, "want %v\ngot  %v", want, got)
}

// randVec returns an n-vector with components uniform in [-scale, scale).
func randVec(t testing.TB, rng *rand.Rand, n int, scale float64) linalg.Vector {
	t.Helper()
	v, err := linalg.GenerateVector(n, func(int) float64 { return (rng.Float64()*2 - 1) * scale })
	require.NoError(t, err)

	return v
}

// randMat returns an n×n matrix with entries uniform in [-1, 1) plus bias·I,
// which keeps it comfortably invertible for bias ≥ n.
func randMat(t testing.TB, rng *rand.Rand, n int, bias float64) linalg.Matrix {
	t.Helper()
	m, err := linalg.GenerateMatrix(n, n, func(r, c int) float64 {
		x := rng.Float64()*2 - 1
		if r == c {
			x += bias
		}

		return x
	})
	require.NoError(t, err)

	return m
}

// randUnitQuat returns a random unit quaternion.
func randUnitQuat(t testing.TB, rng *rand.Rand) linalg.Quaternion {
	t.Helper()
	q, err := linalg.NewQuaternion(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
	require.NoError(t, err)

	return q
}
