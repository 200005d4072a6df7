// SPDX-License-Identifier: MIT
// Package transform_test contains shared fixtures for the transform tests.

package transform_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmath/linalg"
)

// tol is the default absolute tolerance for closed-form expectations.
const tol = 1e-9

func mustVec(t testing.TB, xs ...float64) linalg.Vector {
	t.Helper()
	v, err := linalg.NewVector(xs...)
	require.NoError(t, err)

	return v
}

func mustMat(t testing.TB, rows [][]float64) linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

func mustAxisAngle(t testing.TB, angle float64, axis ...float64) linalg.Quaternion {
	t.Helper()
	q, err := linalg.AngleAxis(angle, mustVec(t, axis...))
	require.NoError(t, err)

	return q
}

// apply maps the cartesian point p through m.
func apply(t testing.TB, m linalg.Matrix, p ...float64) linalg.Vector {
	t.Helper()
	out, err := m.Apply(mustVec(t, p...))
	require.NoError(t, err)

	return out
}

func requireVecNear(t testing.TB, want []float64, got linalg.Vector, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Dim(), "dimension")
	require.InDeltaSlice(t, want, got.Components(), eps, "got %v", got)
}

func requireMatNear(t testing.TB, want, got linalg.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.InDeltaSlice(t, want.RowMajor(), got.RowMajor(), eps, "want %v\ngot  %v", want, got)
}

func randUnitQuat(t testing.TB, rng *rand.Rand) linalg.Quaternion {
	t.Helper()
	q, err := linalg.NewQuaternion(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
	require.NoError(t, err)

	return q
}

// randRange returns n values uniform in [lo, hi).
func randRange(t testing.TB, rng *rand.Rand, n int, lo, hi float64) linalg.Vector {
	t.Helper()
	v, err := linalg.GenerateVector(n, func(int) float64 { return lo + rng.Float64()*(hi-lo) })
	require.NoError(t, err)

	return v
}
