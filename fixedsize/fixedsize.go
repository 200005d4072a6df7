// SPDX-License-Identifier: MIT

// Package fixedsize converts between the generic linalg types and the
// fixed-size vector and matrix types of golang.org/x/image/math/f32 and
// golang.org/x/image/math/f64.
//
// Layout notes:
//   - Mat3/Mat4 are row-major, m[N*r + c], exactly like linalg.Matrix.
//   - Aff3 (2×3) and Aff4 (3×4) are row-major affine matrices whose bottom
//     row (0,…,0,1) is implicit; they convert to and from the full 3×3 / 4×4
//     homogeneous form.
//
// From* conversions cannot fail. To* conversions validate the shape and
// return linalg.ErrDimensionMismatch (wrapped) on mismatch; ToAff* also
// return transform.ErrNotAffine when the bottom row is not (0,…,0,1).
package fixedsize

import (
	"fmt"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/vecmath/linalg"
	"github.com/katalvlaran/vecmath/transform"
)

// scalar is the component type of the x/image math packages.
type scalar interface{ ~float32 | ~float64 }

func opErrorf(op string, err error) error {
	return fmt.Errorf("fixedsize.%s: %w", op, err)
}

// toVector widens a fixed array slice into a linalg.Vector.
func toVector[T scalar](a []T) linalg.Vector {
	v, _ := linalg.GenerateVector(len(a), func(i int) float64 { return float64(a[i]) }) // len(a) ≥ 2

	return v
}

// fillFromVector narrows v into dst, which must have dim(v) elements.
func fillFromVector[T scalar](op string, v linalg.Vector, dst []T) error {
	if err := linalg.ValidateDimIs(v, len(dst)); err != nil {
		return opErrorf(op, err)
	}
	for i, x := range v.Components() {
		dst[i] = T(x)
	}

	return nil
}

// toMatrix widens an n×n row-major array into a linalg.Matrix.
func toMatrix[T scalar](a []T, n int) linalg.Matrix {
	m, _ := linalg.GenerateMatrix(n, n, func(r, c int) float64 { return float64(a[r*n+c]) }) // n ≥ 3

	return m
}

// fillFromMatrix narrows the n×n matrix m into dst (len n*n).
func fillFromMatrix[T scalar](op string, m linalg.Matrix, n int, dst []T) error {
	if m.Rows() != n || m.Cols() != n {
		return opErrorf(op, linalg.ErrDimensionMismatch)
	}
	for i, x := range m.RowMajor() {
		dst[i] = T(x)
	}

	return nil
}

// affToMatrix expands an n×(n+1) affine array to the (n+1)×(n+1) homogeneous form.
func affToMatrix[T scalar](a []T, n int) linalg.Matrix {
	m, _ := linalg.GenerateMatrix(n+1, n+1, func(r, c int) float64 {
		if r == n {
			if c == n {
				return 1
			}

			return 0
		}

		return float64(a[r*(n+1)+c])
	})

	return m
}

// fillAffFromMatrix drops the implicit bottom row of the (n+1)×(n+1) matrix m.
func fillAffFromMatrix[T scalar](op string, m linalg.Matrix, n int, dst []T) error {
	if m.Rows() != n+1 || m.Cols() != n+1 {
		return opErrorf(op, linalg.ErrDimensionMismatch)
	}
	if !transform.IsAffine(m) {
		return opErrorf(op, transform.ErrNotAffine)
	}
	copyPrefix(dst, m.RowMajor())

	return nil
}

// copyPrefix converts the first len(dst) values of src.
func copyPrefix[T scalar](dst []T, src []float64) {
	for i := range dst {
		dst[i] = T(src[i])
	}
}

// ---------- f64 ----------

// FromVec2 converts an f64.Vec2.
func FromVec2(v f64.Vec2) linalg.Vector { return toVector(v[:]) }

// FromVec3 converts an f64.Vec3.
func FromVec3(v f64.Vec3) linalg.Vector { return toVector(v[:]) }

// FromVec4 converts an f64.Vec4.
func FromVec4(v f64.Vec4) linalg.Vector { return toVector(v[:]) }

// ToVec2 converts a 2-D vector.
func ToVec2(v linalg.Vector) (out f64.Vec2, err error) {
	err = fillFromVector("ToVec2", v, out[:])

	return out, err
}

// ToVec3 converts a 3-D vector.
func ToVec3(v linalg.Vector) (out f64.Vec3, err error) {
	err = fillFromVector("ToVec3", v, out[:])

	return out, err
}

// ToVec4 converts a 4-D vector.
func ToVec4(v linalg.Vector) (out f64.Vec4, err error) {
	err = fillFromVector("ToVec4", v, out[:])

	return out, err
}

// FromMat3 converts an f64.Mat3.
func FromMat3(m f64.Mat3) linalg.Matrix { return toMatrix(m[:], 3) }

// FromMat4 converts an f64.Mat4.
func FromMat4(m f64.Mat4) linalg.Matrix { return toMatrix(m[:], 4) }

// ToMat3 converts a 3×3 matrix.
func ToMat3(m linalg.Matrix) (out f64.Mat3, err error) {
	err = fillFromMatrix("ToMat3", m, 3, out[:])

	return out, err
}

// ToMat4 converts a 4×4 matrix.
func ToMat4(m linalg.Matrix) (out f64.Mat4, err error) {
	err = fillFromMatrix("ToMat4", m, 4, out[:])

	return out, err
}

// FromAff3 expands a 2-D affine f64.Aff3 to its 3×3 homogeneous matrix.
func FromAff3(a f64.Aff3) linalg.Matrix { return affToMatrix(a[:], 2) }

// FromAff4 expands a 3-D affine f64.Aff4 to its 4×4 homogeneous matrix.
func FromAff4(a f64.Aff4) linalg.Matrix { return affToMatrix(a[:], 3) }

// ToAff3 converts a 3×3 affine matrix.
func ToAff3(m linalg.Matrix) (out f64.Aff3, err error) {
	err = fillAffFromMatrix("ToAff3", m, 2, out[:])

	return out, err
}

// ToAff4 converts a 4×4 affine matrix.
func ToAff4(m linalg.Matrix) (out f64.Aff4, err error) {
	err = fillAffFromMatrix("ToAff4", m, 3, out[:])

	return out, err
}

// ---------- f32 ----------

// FromVec2F32 converts an f32.Vec2.
func FromVec2F32(v f32.Vec2) linalg.Vector { return toVector(v[:]) }

// FromVec3F32 converts an f32.Vec3.
func FromVec3F32(v f32.Vec3) linalg.Vector { return toVector(v[:]) }

// FromVec4F32 converts an f32.Vec4.
func FromVec4F32(v f32.Vec4) linalg.Vector { return toVector(v[:]) }

// ToVec2F32 converts a 2-D vector, rounding to float32.
func ToVec2F32(v linalg.Vector) (out f32.Vec2, err error) {
	err = fillFromVector("ToVec2F32", v, out[:])

	return out, err
}

// ToVec3F32 converts a 3-D vector, rounding to float32.
func ToVec3F32(v linalg.Vector) (out f32.Vec3, err error) {
	err = fillFromVector("ToVec3F32", v, out[:])

	return out, err
}

// ToVec4F32 converts a 4-D vector, rounding to float32.
func ToVec4F32(v linalg.Vector) (out f32.Vec4, err error) {
	err = fillFromVector("ToVec4F32", v, out[:])

	return out, err
}

// FromMat3F32 converts an f32.Mat3.
func FromMat3F32(m f32.Mat3) linalg.Matrix { return toMatrix(m[:], 3) }

// FromMat4F32 converts an f32.Mat4.
func FromMat4F32(m f32.Mat4) linalg.Matrix { return toMatrix(m[:], 4) }

// ToMat3F32 converts a 3×3 matrix, rounding to float32.
func ToMat3F32(m linalg.Matrix) (out f32.Mat3, err error) {
	err = fillFromMatrix("ToMat3F32", m, 3, out[:])

	return out, err
}

// ToMat4F32 converts a 4×4 matrix, rounding to float32.
func ToMat4F32(m linalg.Matrix) (out f32.Mat4, err error) {
	err = fillFromMatrix("ToMat4F32", m, 4, out[:])

	return out, err
}

// FromAff3F32 expands an f32.Aff3 to its 3×3 homogeneous matrix.
func FromAff3F32(a f32.Aff3) linalg.Matrix { return affToMatrix(a[:], 2) }

// FromAff4F32 expands an f32.Aff4 to its 4×4 homogeneous matrix.
func FromAff4F32(a f32.Aff4) linalg.Matrix { return affToMatrix(a[:], 3) }

// ToAff3F32 converts a 3×3 affine matrix, rounding to float32.
func ToAff3F32(m linalg.Matrix) (out f32.Aff3, err error) {
	err = fillAffFromMatrix("ToAff3F32", m, 2, out[:])

	return out, err
}

// ToAff4F32 converts a 4×4 affine matrix, rounding to float32.
func ToAff4F32(m linalg.Matrix) (out f32.Aff4, err error) {
	err = fillAffFromMatrix("ToAff4F32", m, 3, out[:])

	return out, err
}
