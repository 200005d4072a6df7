// SPDX-License-Identifier: MIT
package transform_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmath/linalg"
	"github.com/katalvlaran/vecmath/transform"
)

// TestDecompose2D_Known recovers translation, angle and scale, including
// angles in the lower half-plane.
func TestDecompose2D_Known(t *testing.T) {
	t.Parallel()

	for _, angle := range []float64{0, 0.3, 2.5, -2.5, -0.1, math.Pi / 2, -math.Pi / 2} {
		m, err := transform.Compose2D(mustVec(t, 3, 4), angle, mustVec(t, 2, 5))
		require.NoError(t, err)

		tr, err := transform.Translation(m)
		require.NoError(t, err)
		requireVecNear(t, []float64{3, 4}, tr, 0)

		s, err := transform.ScaleOf(m)
		require.NoError(t, err)
		requireVecNear(t, []float64{2, 5}, s, tol)

		got, err := transform.Rotation2D(m)
		require.NoError(t, err)
		assert.InDelta(t, angle, got, tol, "angle %v", angle)

		p, err := transform.Decompose2D(m)
		require.NoError(t, err)
		assert.InDelta(t, angle, p.Angle, tol)
		requireVecNear(t, tr.Components(), p.Translation, 0)
		requireVecNear(t, s.Components(), p.Scale, 0)

		back, err := p.Matrix()
		require.NoError(t, err)
		requireMatNear(t, m, back, tol)
	}
}

// TestDecompose3D_RoundTrip recomposes random TRS matrices, including
// non-uniform scale.
func TestDecompose3D_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 200; i++ {
		tr := randRange(t, rng, 3, -50, 50)
		q := randUnitQuat(t, rng)
		s := randRange(t, rng, 3, 0.2, 4)

		m, err := transform.Compose3D(tr, q, s)
		require.NoError(t, err)

		p, err := transform.Decompose3D(m)
		require.NoError(t, err)
		requireVecNear(t, tr.Components(), p.Translation, 1e-12)
		requireVecNear(t, s.Components(), p.Scale, 1e-9)
		assert.True(t, p.Rotation.SameRotation(q, linalg.WithEpsilon(1e-6)), "want %v got %v", q, p.Rotation)
		assert.InDelta(t, 1, p.Rotation.Norm(), 1e-12)

		back, err := p.Matrix()
		require.NoError(t, err)
		requireMatNear(t, m, back, 1e-8)
	}
}

// TestRotation3D_HalfTurns covers rotations by π, where the scalar part is
// zero and the signs come from the symmetric part of the matrix.
func TestRotation3D_HalfTurns(t *testing.T) {
	t.Parallel()

	axes := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
		{1, -1, 0},
		{0, 1, -1},
		{-1, 0, 1},
		{1, 2, 3},
		{1, -2, 3},
		{-3, 1, -2},
	}
	for _, axis := range axes {
		q := mustAxisAngle(t, math.Pi, axis...)
		m, err := transform.Compose3D(mustVec(t, 1, 2, 3), q, mustVec(t, 2, 2, 2))
		require.NoError(t, err)

		got, err := transform.Rotation3D(m)
		require.NoError(t, err)
		assert.True(t, got.SameRotation(q, linalg.WithEpsilon(1e-6)), "axis %v: want %v got %v", axis, q, got)
	}

	// just short of a half turn still uses the antisymmetric signs
	q := mustAxisAngle(t, math.Pi-1e-4, 1, -1, 2)
	m, err := transform.RotateQuaternion(q)
	require.NoError(t, err)
	got, err := transform.Rotation3D(m)
	require.NoError(t, err)
	assert.True(t, got.SameRotation(q, linalg.WithEpsilon(1e-6)))
}

// TestRotation3D_NearHalfTurn covers 0 < w below the fallback threshold,
// where w must flip together with x, y and z when the largest vector
// component is negative.
func TestRotation3D_NearHalfTurn(t *testing.T) {
	t.Parallel()

	angle := 2 * math.Acos(5e-7)
	axes := [][]float64{
		{3, 1, 2},
		{-3, 1, 2},
		{1, -3, 2},
		{1, 2, -3},
		{-1, -2, -3},
	}
	for _, axis := range axes {
		q := mustAxisAngle(t, angle, axis...)
		m, err := transform.RotateQuaternion(q)
		require.NoError(t, err)

		got, err := transform.Rotation3D(m)
		require.NoError(t, err)
		assert.True(t, got.SameRotation(q, linalg.WithEpsilon(1e-8)), "axis %v: want %v got %v", axis, q, got)
	}
}

// TestRotationMatrix_Pure checks that translation and scale are stripped.
func TestRotationMatrix_Pure(t *testing.T) {
	t.Parallel()

	q := mustAxisAngle(t, 0.8, 1, 1, 0)
	m, err := transform.Compose3D(mustVec(t, 4, 5, 6), q, mustVec(t, 1, 2, 3))
	require.NoError(t, err)

	r, err := transform.RotationMatrix(m)
	require.NoError(t, err)
	want, err := transform.RotateQuaternion(q)
	require.NoError(t, err)
	requireMatNear(t, want, r, 1e-12)
}

// TestDecompose_Errors checks shape guards and zero scale.
func TestDecompose_Errors(t *testing.T) {
	t.Parallel()

	rect := mustMat(t, [][]float64{{1, 0, 0}, {0, 1, 0}})
	_, err := transform.Translation(rect)
	assert.ErrorIs(t, err, transform.ErrNotAffine)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = transform.ScaleOf(mustMat(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, transform.ErrNotAffine)

	m4, err := transform.Translate(mustVec(t, 1, 2, 3))
	require.NoError(t, err)
	_, err = transform.Rotation2D(m4)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = transform.Decompose2D(m4)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	m3 := transform.Rotate2D(1)
	_, err = transform.Rotation3D(m3)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = transform.Decompose3D(m3)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	flat, err := transform.Compose2D(mustVec(t, 1, 1), 0.4, mustVec(t, 0, 1))
	require.NoError(t, err)
	_, err = transform.Rotation2D(flat)
	assert.ErrorIs(t, err, linalg.ErrSingular)
	_, err = transform.Decompose2D(flat)
	assert.ErrorIs(t, err, linalg.ErrDegenerate)

	flat3, err := transform.Compose3D(mustVec(t, 1, 1, 1), linalg.IdentityQuaternion(), mustVec(t, 1, 0, 1))
	require.NoError(t, err)
	_, err = transform.Decompose3D(flat3)
	assert.ErrorIs(t, err, linalg.ErrSingular)

	// translation and scale stay available without a rotation
	tr, err := transform.Translation(flat)
	require.NoError(t, err)
	requireVecNear(t, []float64{1, 1}, tr, 0)
}
