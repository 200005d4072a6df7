// SPDX-License-Identifier: MIT

// Package transform - TRS decomposition of homogeneous affine matrices.
//
// For M = T·R·S acting on n-dimensional space:
//   - translation is the cartesian projection of column n;
//   - scale[i] is the length of the i-th basis column of the linear block
//     (R is orthonormal, so each column of R·S has length s[i]);
//   - rotation is (T⁻¹·M)·S⁻¹: translation removed on the left, scale divided
//     out of each basis column on the right.
//
// Reflections (negative determinant) are not separated out: scale is always
// non-negative and the rotation block then has determinant -1.

package transform

import (
	"math"

	"github.com/katalvlaran/vecmath/linalg"
)

// quatFallbackEps is the scalar magnitude below which Rotation3D recovers
// the signs of (x, y, z) from the symmetric off-diagonal sums instead of the
// antisymmetric differences, which all vanish for rotations near π.
const quatFallbackEps = 1e-6

// Translation returns the translation part of the homogeneous matrix m: the
// last column projected back to cartesian coordinates.
// Errors: ErrNotAffine.
func Translation(m linalg.Matrix) (linalg.Vector, error) {
	if err := validateHomogeneous(m); err != nil {
		return linalg.Vector{}, opErrorf("Translation", err)
	}
	last, _ := m.Col(m.Cols() - 1) // index valid after validation
	t, err := last.ToCartesian()
	if err != nil {
		return linalg.Vector{}, opErrorf("Translation", err)
	}

	return t, nil
}

// ScaleOf returns the per-axis scale of m: the Euclidean length of each of
// the first n columns of the linear block.
// Errors: ErrNotAffine.
func ScaleOf(m linalg.Matrix) (linalg.Vector, error) {
	if err := validateHomogeneous(m); err != nil {
		return linalg.Vector{}, opErrorf("ScaleOf", err)
	}
	n := m.Rows() - 1
	data := m.RowMajor()

	return linalg.GenerateVector(n, func(c int) float64 {
		var ss float64
		for r := 0; r < n; r++ {
			x := data[r*(n+1)+c]
			ss += x * x
		}

		return math.Sqrt(ss)
	})
}

// RotationMatrix returns the pure rotation of m in homogeneous form, with
// translation and scale removed.
// Errors: ErrNotAffine; linalg.ErrSingular when an axis has zero scale.
func RotationMatrix(m linalg.Matrix) (linalg.Matrix, error) {
	t, err := Translation(m)
	if err != nil {
		return linalg.Matrix{}, opErrorf("RotationMatrix", err)
	}
	s, err := ScaleOf(m)
	if err != nil {
		return linalg.Matrix{}, opErrorf("RotationMatrix", err)
	}
	untranslate, _ := Translate(t.Negate()) // t has dimension n ≥ 1
	scale, _ := Scale(s)
	unscale, err := scale.Inverse()
	if err != nil {
		return linalg.Matrix{}, opErrorf("RotationMatrix", err)
	}

	return chain("RotationMatrix", untranslate, m, unscale)
}

// Rotation2D returns the rotation angle of the 3×3 homogeneous matrix m in
// (-π, π], recovered with atan2(R[1][0], R[0][0]) so both half-planes keep
// their sign.
// Errors: ErrNotAffine, linalg.ErrDimensionMismatch (not 3×3), linalg.ErrSingular.
func Rotation2D(m linalg.Matrix) (float64, error) {
	if err := validateSpace(m, 2); err != nil {
		return 0, opErrorf("Rotation2D", err)
	}
	r, err := RotationMatrix(m)
	if err != nil {
		return 0, opErrorf("Rotation2D", err)
	}
	cos, _ := r.At(0, 0)
	sin, _ := r.At(1, 0)

	return math.Atan2(sin, cos), nil
}

// Rotation3D returns the unit quaternion of the rotation in the 4×4
// homogeneous matrix m.
//
// Implementation:
//   - Stage 1: magnitudes from the diagonal,
//     |w| = ½√(1+r00+r11+r22), |x| = ½√(1+r00−r11−r22), and so on. Arguments
//     are clamped at 0 to absorb round-off.
//   - Stage 2: signs of x, y, z from r21−r12, r02−r20, r10−r01 (w ≥ 0).
//     When w ≈ 0 those differences vanish; the signs are then taken relative
//     to the largest of x, y, z from the symmetric sums r01+r10 (4xy),
//     r02+r20 (4xz) and r12+r21 (4yz), and w takes the sign of the largest
//     component's antisymmetric difference.
//   - Stage 3: normalize.
//
// Errors: ErrNotAffine, linalg.ErrDimensionMismatch (not 4×4),
// linalg.ErrSingular, linalg.ErrZeroNorm.
func Rotation3D(m linalg.Matrix) (linalg.Quaternion, error) {
	if err := validateSpace(m, 3); err != nil {
		return linalg.Quaternion{}, opErrorf("Rotation3D", err)
	}
	rm, err := RotationMatrix(m)
	if err != nil {
		return linalg.Quaternion{}, opErrorf("Rotation3D", err)
	}
	d := rm.RowMajor()
	r := func(i, j int) float64 { return d[i*4+j] }

	w := 0.5 * math.Sqrt(math.Max(0, 1+r(0, 0)+r(1, 1)+r(2, 2)))
	x := 0.5 * math.Sqrt(math.Max(0, 1+r(0, 0)-r(1, 1)-r(2, 2)))
	y := 0.5 * math.Sqrt(math.Max(0, 1-r(0, 0)+r(1, 1)-r(2, 2)))
	z := 0.5 * math.Sqrt(math.Max(0, 1-r(0, 0)-r(1, 1)+r(2, 2)))

	if w > quatFallbackEps {
		x = math.Copysign(x, r(2, 1)-r(1, 2))
		y = math.Copysign(y, r(0, 2)-r(2, 0))
		z = math.Copysign(z, r(1, 0)-r(0, 1))
	} else {
		w, x, y, z = signsFromSymmetric(w, x, y, z,
			[3]float64{r(2, 1) - r(1, 2), r(0, 2) - r(2, 0), r(1, 0) - r(0, 1)},
			r(0, 1)+r(1, 0), r(0, 2)+r(2, 0), r(1, 2)+r(2, 1))
	}

	q, err := linalg.NewQuaternion(w, x, y, z).Normalize()
	if err != nil {
		return linalg.Quaternion{}, opErrorf("Rotation3D", err)
	}

	return q, nil
}

// signsFromSymmetric orients non-negative magnitudes x, y, z so that their
// pairwise products match the signs of sxy, sxz, syz. The largest magnitude
// stays positive and w follows the sign of its antisymmetric difference in
// anti (4wx, 4wy, 4wz), so the result is q or -q.
func signsFromSymmetric(w, x, y, z float64, anti [3]float64, sxy, sxz, syz float64) (float64, float64, float64, float64) {
	switch {
	case x >= y && x >= z:
		y = math.Copysign(y, sxy)
		z = math.Copysign(z, sxz)
		w = math.Copysign(w, anti[0])
	case y >= z:
		x = math.Copysign(x, sxy)
		z = math.Copysign(z, syz)
		w = math.Copysign(w, anti[1])
	default:
		x = math.Copysign(x, sxz)
		y = math.Copysign(y, syz)
		w = math.Copysign(w, anti[2])
	}

	return w, x, y, z
}
