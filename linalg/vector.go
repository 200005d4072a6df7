// SPDX-License-Identifier: MIT

// Package linalg - Vector: immutable fixed-length sequence of float64 components.
//
// Purpose:
//   - Positions and directions of arbitrary (small) dimension.
//   - Every operation is pure: it returns a fresh Vector and never mutates
//     the receiver or its arguments, so values are safe to share across
//     goroutines without coordination.
//   - Dimension-sensitive operations (Add, Sub, Dot, Lerp, ...) require equal
//     dimensions and return ErrDimensionMismatch otherwise; there is no
//     silent coercion.
//
// Kernels delegate the elementwise loops to gonum/floats.
//
// Complexity quicksheet:
//   - construction, Add/Sub/Mul/Dot/Length: O(n); Outer: O(n·m).

package linalg

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for Vector error wrapping.
const (
	opVecNew       = "Vector.New"
	opVecAt        = "Vector.At"
	opVecAdd       = "Vector.Add"
	opVecSub       = "Vector.Sub"
	opVecDot       = "Vector.Dot"
	opVecCross     = "Vector.Cross"
	opVecTriple    = "Vector.Triple"
	opVecNormalize = "Vector.Normalize"
	opVecSetLength = "Vector.SetLength"
	opVecAngle     = "Vector.Angle"
	opVecDistance  = "Vector.Distance"
	opVecProject   = "Vector.Project"
	opVecReflect   = "Vector.Reflect"
	opVecLerp      = "Vector.Lerp"
	opVecCartesian = "Vector.ToCartesian"
	opVecBasis     = "Basis"
	opVecChange    = "Vector.ChangeBasis"
)

// Vector is an immutable n-dimensional vector (n ≥ 1).
// The zero value has dimension 0 and is not a valid operand; build vectors
// with NewVector, GenerateVector or one of the named constructors.
type Vector struct {
	a []float64 // components; never aliased outside the package
}

// vec wraps an owned slice without validation. Callers guarantee len(a) ≥ 1
// and that nobody else holds a reference to a.
func vec(a []float64) Vector { return Vector{a: a} }

// NewVector builds a vector from an explicit component list.
// The components are copied; later changes to the caller's slice are not observed.
// Returns ErrBadShape when no component is given.
func NewVector(components ...float64) (Vector, error) {
	if err := ValidateDim(len(components)); err != nil {
		return Vector{}, opErrorf(opVecNew, err)
	}
	a := make([]float64, len(components))
	copy(a, components)

	return vec(a), nil
}

// GenerateVector builds an n-dimensional vector whose i-th component is fn(i).
// fn is called exactly once per index, in ascending order.
// Returns ErrBadShape when n < 1.
func GenerateVector(n int, fn func(i int) float64) (Vector, error) {
	if err := ValidateDim(n); err != nil {
		return Vector{}, opErrorf(opVecNew, err)
	}

	return generate(n, fn), nil
}

// generate is the unchecked core of GenerateVector.
func generate(n int, fn func(i int) float64) Vector {
	a := make([]float64, n)
	for i := range a {
		a[i] = fn(i)
	}

	return vec(a)
}

// ZeroVector returns the n-dimensional zero vector.
func ZeroVector(n int) (Vector, error) { return RepeatVector(0, n) }

// OneVector returns the n-dimensional vector of ones.
func OneVector(n int) (Vector, error) { return RepeatVector(1, n) }

// RepeatVector returns an n-dimensional vector with every component equal to value.
func RepeatVector(value float64, n int) (Vector, error) {
	return GenerateVector(n, func(int) float64 { return value })
}

// Basis returns the axis-th basis vector of n-dimensional space:
// 1 at index axis, 0 elsewhere.
// Errors: ErrBadShape (n<1), ErrOutOfRange (axis ∉ [0,n)).
func Basis(axis, n int) (Vector, error) {
	if err := ValidateDim(n); err != nil {
		return Vector{}, opErrorf(opVecBasis, err)
	}
	if err := ValidateIndex(axis, n); err != nil {
		return Vector{}, opErrorf(opVecBasis, err)
	}
	a := make([]float64, n)
	a[axis] = 1

	return vec(a), nil
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.a) }

// At returns the i-th component or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if err := ValidateIndex(i, len(v.a)); err != nil {
		return 0, opErrorf(opVecAt, err)
	}

	return v.a[i], nil
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.a))
	copy(out, v.a)

	return out
}

// String renders the vector as "[x, y, z]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v.a {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("]")

	return sb.String()
}

// Add returns the elementwise sum v + w.
// Errors: ErrDimensionMismatch.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return Vector{}, opErrorf(opVecAdd, err)
	}

	return vec(floats.AddTo(make([]float64, len(v.a)), v.a, w.a)), nil
}

// Sub returns the elementwise difference v - w.
// Errors: ErrDimensionMismatch.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return Vector{}, opErrorf(opVecSub, err)
	}

	return vec(floats.SubTo(make([]float64, len(v.a)), v.a, w.a)), nil
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return vec(floats.ScaleTo(make([]float64, len(v.a)), s, v.a))
}

// Div returns v scaled by 1/s. Division by zero follows IEEE semantics
// (±Inf or NaN components) and is not guarded.
func (v Vector) Div(s float64) Vector { return v.Mul(1 / s) }

// Negate returns -v.
func (v Vector) Negate() Vector { return v.Mul(-1) }

// Dot returns the inner product Σ v[i]·w[i].
// Errors: ErrDimensionMismatch.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return 0, opErrorf(opVecDot, err)
	}

	return floats.Dot(v.a, w.a), nil
}

// Cross returns the 3-D cross product v × w. The result is orthogonal to
// both operands with magnitude |v||w|sin θ, oriented by the right-hand rule.
// Errors: ErrDimensionMismatch unless both operands are 3-dimensional.
func (v Vector) Cross(w Vector) (Vector, error) {
	if err := ValidateDimIs(v, 3); err != nil {
		return Vector{}, opErrorf(opVecCross, err)
	}
	if err := ValidateDimIs(w, 3); err != nil {
		return Vector{}, opErrorf(opVecCross, err)
	}

	return cross3(v.a, w.a), nil
}

// cross3 computes a × b for 3-element slices.
func cross3(a, b []float64) Vector {
	return vec([]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
}

// Triple returns the scalar triple product v · (w × u): the signed volume of
// the parallelepiped spanned by the three 3-D vectors.
func (v Vector) Triple(w, u Vector) (float64, error) {
	c, err := w.Cross(u)
	if err != nil {
		return 0, opErrorf(opVecTriple, err)
	}
	d, err := v.Dot(c)
	if err != nil {
		return 0, opErrorf(opVecTriple, err)
	}

	return d, nil
}

// Outer returns the dim(v)×dim(w) matrix M with M[r][c] = v[r]·w[c].
func (v Vector) Outer(w Vector) Matrix {
	return generateMatrix(len(v.a), len(w.a), func(r, c int) float64 {
		return v.a[r] * w.a[c]
	})
}

// LengthSquared returns the squared Euclidean norm.
func (v Vector) LengthSquared() float64 { return floats.Dot(v.a, v.a) }

// Length returns the Euclidean norm.
func (v Vector) Length() float64 { return floats.Norm(v.a, 2) }

// Normalize returns the unit vector in the direction of v.
// Errors: ErrZeroLength when |v| is exactly zero.
func (v Vector) Normalize() (Vector, error) {
	l := v.Length()
	if l == 0 {
		return Vector{}, opErrorf(opVecNormalize, ErrZeroLength)
	}

	return v.Div(l), nil
}

// SetLength returns the vector with v's direction and the given length.
// Errors: ErrZeroLength.
func (v Vector) SetLength(length float64) (Vector, error) {
	u, err := v.Normalize()
	if err != nil {
		return Vector{}, opErrorf(opVecSetLength, err)
	}

	return u.Mul(length), nil
}

// Angle returns the unsigned angle between v and w in radians, in [0, π].
// The cosine is clamped to [-1, 1] so round-off on (anti)parallel inputs
// cannot leave the domain of acos.
// Errors: ErrDimensionMismatch, ErrZeroLength.
func (v Vector) Angle(w Vector) (float64, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return 0, opErrorf(opVecAngle, err)
	}
	a, err := v.Normalize()
	if err != nil {
		return 0, opErrorf(opVecAngle, err)
	}
	b, err := w.Normalize()
	if err != nil {
		return 0, opErrorf(opVecAngle, err)
	}

	return math.Acos(clampUnit(floats.Dot(a.a, b.a))), nil
}

// clampUnit clamps x into [-1, 1] ahead of acos/asin.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// Distance returns |v - w|.
// Errors: ErrDimensionMismatch.
func (v Vector) Distance(w Vector) (float64, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return 0, opErrorf(opVecDistance, err)
	}

	return floats.Distance(v.a, w.a, 2), nil
}

// Project returns the component of v along the direction of w.
// w need not be unit length.
// Errors: ErrDimensionMismatch, ErrZeroLength (w is zero).
func (v Vector) Project(w Vector) (Vector, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return Vector{}, opErrorf(opVecProject, err)
	}
	u, err := w.Normalize()
	if err != nil {
		return Vector{}, opErrorf(opVecProject, err)
	}

	return u.Mul(floats.Dot(v.a, u.a)), nil
}

// Reflect mirrors v about the normal n: the component along n is kept and
// the perpendicular remainder is negated.
// Errors: ErrDimensionMismatch, ErrZeroLength.
func (v Vector) Reflect(n Vector) (Vector, error) {
	p, err := v.Project(n)
	if err != nil {
		return Vector{}, opErrorf(opVecReflect, err)
	}
	// p - (v - p) == 2p - v
	out := floats.ScaleTo(make([]float64, len(v.a)), 2, p.a)
	floats.Sub(out, v.a)

	return vec(out), nil
}

// Lerp linearly interpolates (1-t)·v + t·w. t is not restricted to [0,1].
// Errors: ErrDimensionMismatch.
func (v Vector) Lerp(w Vector, t float64) (Vector, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return Vector{}, opErrorf(opVecLerp, err)
	}
	out := floats.ScaleTo(make([]float64, len(v.a)), 1-t, v.a)
	floats.AddScaled(out, t, w.a)

	return vec(out), nil
}

// Midpoint returns Lerp(w, 0.5).
func (v Vector) Midpoint(w Vector) (Vector, error) { return v.Lerp(w, 0.5) }

// Append concatenates w after v, producing a vector of dimension dim(v)+dim(w).
func (v Vector) Append(w Vector) Vector {
	out := make([]float64, 0, len(v.a)+len(w.a))
	out = append(out, v.a...)
	out = append(out, w.a...)

	return vec(out)
}

// ToHomogeneous embeds a cartesian point into homogeneous coordinates by
// appending w = 1.
func (v Vector) ToHomogeneous() Vector {
	return v.Append(vec([]float64{1}))
}

// ToCartesian divides every component but the last by the last one (w) and
// drops w. A zero w denotes a point at infinity; the division is not guarded
// and yields ±Inf/NaN components.
// Errors: ErrBadShape when dim(v) < 2 (the result would be empty).
func (v Vector) ToCartesian() (Vector, error) {
	n := len(v.a) - 1
	if err := ValidateDim(n); err != nil {
		return Vector{}, opErrorf(opVecCartesian, err)
	}
	w := v.a[n]

	return generate(n, func(i int) float64 { return v.a[i] / w }), nil
}

// ChangeBasis expresses v in the coordinate system whose basis vectors are
// the columns of basis: basis⁻¹ · v. Homogeneous bases accept cartesian v
// (see Matrix.Apply).
// Errors: those of Matrix.Inverse and Matrix.Apply.
func (v Vector) ChangeBasis(basis Matrix) (Vector, error) {
	inv, err := basis.Inverse()
	if err != nil {
		return Vector{}, opErrorf(opVecChange, err)
	}
	out, err := inv.Apply(v)
	if err != nil {
		return Vector{}, opErrorf(opVecChange, err)
	}

	return out, nil
}

// ApproxEqual reports whether v and w have the same dimension and every pair
// of components agrees within the configured epsilon (absolute or relative).
func (v Vector) ApproxEqual(w Vector, opts ...Option) bool {
	o := gatherOptions(opts...)
	if len(v.a) != len(w.a) {
		return false
	}

	return floats.EqualApprox(v.a, w.a, o.eps)
}
