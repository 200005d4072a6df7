// SPDX-License-Identifier: MIT

// Package transform - construction of homogeneous transform matrices.
//
// Every builder returns an (n+1)×(n+1) matrix acting on n-dimensional points
// through linalg.Matrix.Apply. Composition order follows the usual TRS
// convention: Compose(t, r, s) = Translate(t)·Rotate(r)·Scale(s), so a point
// is scaled in local space first, then rotated, then moved to world space.

package transform

import (
	"math"

	"github.com/katalvlaran/vecmath/linalg"
)

// Translate returns the homogeneous translation by t: identity with column
// n holding t.
// Errors: linalg.ErrBadShape for an empty vector.
func Translate(t linalg.Vector) (linalg.Matrix, error) {
	n := t.Dim()
	if err := linalg.ValidateDim(n); err != nil {
		return linalg.Matrix{}, opErrorf("Translate", err)
	}
	tc := t.Components()

	return linalg.GenerateMatrix(n+1, n+1, func(r, c int) float64 {
		switch {
		case r == c:
			return 1
		case c == n:
			return tc[r]
		default:
			return 0
		}
	})
}

// Scale returns the homogeneous per-axis scale by s: diag(s..., 1).
// Errors: linalg.ErrBadShape for an empty vector.
func Scale(s linalg.Vector) (linalg.Matrix, error) {
	n := s.Dim()
	if err := linalg.ValidateDim(n); err != nil {
		return linalg.Matrix{}, opErrorf("Scale", err)
	}
	sc := s.Components()

	return linalg.GenerateMatrix(n+1, n+1, func(r, c int) float64 {
		switch {
		case r != c:
			return 0
		case r < n:
			return sc[r]
		default:
			return 1
		}
	})
}

// Rotate2D returns the 3×3 homogeneous counter-clockwise rotation by angle
// radians about the origin.
func Rotate2D(angle float64) linalg.Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	m, _ := linalg.NewMatrix([][]float64{ // literal shape is always valid
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})

	return m
}

// Rotate2DAbout rotates by angle about the 2-D pivot o:
// Translate(o)·Rotate2D(angle)·Translate(-o).
// Errors: linalg.ErrDimensionMismatch unless o is 2-D.
func Rotate2DAbout(angle float64, o linalg.Vector) (linalg.Matrix, error) {
	if err := linalg.ValidateDimIs(o, 2); err != nil {
		return linalg.Matrix{}, opErrorf("Rotate2DAbout", err)
	}

	return about(Rotate2D(angle), o, "Rotate2DAbout")
}

// Rotate3D returns the 4×4 homogeneous rotation by angle radians about axis.
// Errors: linalg.ErrDimensionMismatch (axis not 3-D), linalg.ErrZeroLength.
func Rotate3D(angle float64, axis linalg.Vector) (linalg.Matrix, error) {
	q, err := linalg.AngleAxis(angle, axis)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Rotate3D", err)
	}

	return RotateQuaternion(q)
}

// Rotate3DAbout rotates by angle radians about axis through the 3-D pivot o:
// Translate(o)·Rotate3D(angle, axis)·Translate(-o).
// Errors: linalg.ErrDimensionMismatch (axis or o not 3-D), linalg.ErrZeroLength.
func Rotate3DAbout(angle float64, axis, o linalg.Vector) (linalg.Matrix, error) {
	if err := linalg.ValidateDimIs(o, 3); err != nil {
		return linalg.Matrix{}, opErrorf("Rotate3DAbout", err)
	}
	r, err := Rotate3D(angle, axis)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Rotate3DAbout", err)
	}

	return about(r, o, "Rotate3DAbout")
}

// RotateQuaternion returns the 4×4 homogeneous rotation matrix of q.
// q is normalized first, so any non-zero quaternion is accepted.
// Errors: linalg.ErrZeroNorm.
func RotateQuaternion(q linalg.Quaternion) (linalg.Matrix, error) {
	u, err := q.Normalize()
	if err != nil {
		return linalg.Matrix{}, opErrorf("RotateQuaternion", err)
	}
	c := u.Components()
	a, b, cc, d := c[0], c[1], c[2], c[3]

	return linalg.NewMatrix([][]float64{
		{a*a + b*b - cc*cc - d*d, 2*b*cc - 2*a*d, 2*b*d + 2*a*cc, 0},
		{2*b*cc + 2*a*d, a*a - b*b + cc*cc - d*d, 2*cc*d - 2*a*b, 0},
		{2*b*d - 2*a*cc, 2*cc*d + 2*a*b, a*a - b*b - cc*cc + d*d, 0},
		{0, 0, 0, 1},
	})
}

// RotateQuaternionAbout rotates by q about the 3-D pivot o.
// Errors: linalg.ErrDimensionMismatch (o not 3-D), linalg.ErrZeroNorm.
func RotateQuaternionAbout(q linalg.Quaternion, o linalg.Vector) (linalg.Matrix, error) {
	if err := linalg.ValidateDimIs(o, 3); err != nil {
		return linalg.Matrix{}, opErrorf("RotateQuaternionAbout", err)
	}
	r, err := RotateQuaternion(q)
	if err != nil {
		return linalg.Matrix{}, opErrorf("RotateQuaternionAbout", err)
	}

	return about(r, o, "RotateQuaternionAbout")
}

// about conjugates r by the translation to pivot o: T(o)·r·T(-o).
func about(r linalg.Matrix, o linalg.Vector, op string) (linalg.Matrix, error) {
	to, err := Translate(o)
	if err != nil {
		return linalg.Matrix{}, opErrorf(op, err)
	}
	back, err := Translate(o.Negate())
	if err != nil {
		return linalg.Matrix{}, opErrorf(op, err)
	}

	return chain(op, to, r, back)
}

// chain multiplies ms left to right.
func chain(op string, ms ...linalg.Matrix) (linalg.Matrix, error) {
	out := ms[0]
	var err error
	for _, m := range ms[1:] {
		if out, err = out.Mul(m); err != nil {
			return linalg.Matrix{}, opErrorf(op, err)
		}
	}

	return out, nil
}

// Compose2D returns Translate(t)·Rotate2D(angle)·Scale(s) for 2-D t and s.
// Errors: linalg.ErrDimensionMismatch.
func Compose2D(t linalg.Vector, angle float64, s linalg.Vector) (linalg.Matrix, error) {
	if err := linalg.ValidateDimIs(t, 2); err != nil {
		return linalg.Matrix{}, opErrorf("Compose2D", err)
	}
	if err := linalg.ValidateDimIs(s, 2); err != nil {
		return linalg.Matrix{}, opErrorf("Compose2D", err)
	}
	tm, _ := Translate(t) // dimensions validated above
	sm, _ := Scale(s)

	return chain("Compose2D", tm, Rotate2D(angle), sm)
}

// Compose3D returns Translate(t)·RotateQuaternion(q)·Scale(s) for 3-D t and s.
// Errors: linalg.ErrDimensionMismatch, linalg.ErrZeroNorm.
func Compose3D(t linalg.Vector, q linalg.Quaternion, s linalg.Vector) (linalg.Matrix, error) {
	if err := linalg.ValidateDimIs(t, 3); err != nil {
		return linalg.Matrix{}, opErrorf("Compose3D", err)
	}
	if err := linalg.ValidateDimIs(s, 3); err != nil {
		return linalg.Matrix{}, opErrorf("Compose3D", err)
	}
	rm, err := RotateQuaternion(q)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Compose3D", err)
	}
	tm, _ := Translate(t)
	sm, _ := Scale(s)

	return chain("Compose3D", tm, rm, sm)
}

// Perspective returns the 4×4 projective matrix for a right-handed camera
// looking down -Z, mapping the view frustum to clip space with z in [-1, 1].
// fov is the horizontal field of view in radians; aspect is width/height.
// Points are projected by Matrix.Apply, which performs the perspective divide.
//
// Errors: linalg.ErrDomain unless 0 < fov < π, aspect > 0 and 0 < near < far.
func Perspective(fov, aspect, near, far float64) (linalg.Matrix, error) {
	if !(fov > 0 && fov < math.Pi) || !(aspect > 0) || !(near > 0 && far > near) {
		return linalg.Matrix{}, opErrorf("Perspective", linalg.ErrDomain)
	}
	xs := 1 / math.Tan(fov/2)
	ys := xs * aspect
	fl := far - near

	return linalg.NewMatrix([][]float64{
		{xs, 0, 0, 0},
		{0, ys, 0, 0},
		{0, 0, -(far + near) / fl, -2 * near * far / fl},
		{0, 0, -1, 0},
	})
}
