// SPDX-License-Identifier: MIT

// Package linalg - Quaternion: immutable (s, x, y, z) rotation representor.
//
// Purpose:
//   - A unit quaternion represents a 3-D rotation. q and -q represent the
//     same rotation.
//   - Non-unit quaternions only appear transiently (componentwise Add/Sub/Scale
//     during interpolation) and must be normalized before use as rotations.
//
// Conventions:
//   - Hamilton product, right-handed axes.
//   - FromEulerAngles composes Ry(yaw)·Rx(-pitch)·Rz(roll): roll is applied
//     first in local space, yaw last. Y is up, X is right, Z points toward the
//     viewer. Pitch turns about -X: a positive pitch carries +Y toward -Z and
//     +Z toward +Y.
//   - Hamilton product, conjugate, norm and inverse are computed by
//     gonum/num/quat.
package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Operation tags for Quaternion error wrapping.
const (
	opQuatNew       = "Quaternion.New"
	opQuatAt        = "Quaternion.At"
	opQuatNormalize = "Quaternion.Normalize"
	opQuatInverse   = "Quaternion.Inverse"
	opQuatRotate    = "Quaternion.Rotate"
	opQuatAxis      = "Quaternion.Axis"
	opQuatSlerp     = "Quaternion.Slerp"
	opQuatAngleAxis = "AngleAxis"
)

// Quaternion is the immutable value s + xi + yj + zk.
// The zero value is the zero quaternion, which is not a rotation.
type Quaternion struct {
	s, x, y, z float64
}

// NewQuaternion builds a quaternion from its scalar part s and vector part (x,y,z).
func NewQuaternion(s, x, y, z float64) Quaternion {
	return Quaternion{s: s, x: x, y: y, z: z}
}

// FromScalarVector builds s + v where v is the 3-D vector part.
// Errors: ErrDimensionMismatch unless dim(v) == 3.
func FromScalarVector(s float64, v Vector) (Quaternion, error) {
	if err := ValidateDimIs(v, 3); err != nil {
		return Quaternion{}, opErrorf(opQuatNew, err)
	}

	return Quaternion{s: s, x: v.a[0], y: v.a[1], z: v.a[2]}, nil
}

// PureQuaternion embeds the 3-D vector v as 0 + v.
func PureQuaternion(v Vector) (Quaternion, error) { return FromScalarVector(0, v) }

// IdentityQuaternion returns 1 + 0i + 0j + 0k, the identity rotation.
func IdentityQuaternion() Quaternion { return Quaternion{s: 1} }

// AngleAxis returns the unit quaternion rotating by angle radians about axis:
// cos(angle/2) + axiŝ·sin(angle/2).
// Errors: ErrDimensionMismatch (axis not 3-D), ErrZeroLength (zero axis).
func AngleAxis(angle float64, axis Vector) (Quaternion, error) {
	if err := ValidateDimIs(axis, 3); err != nil {
		return Quaternion{}, opErrorf(opQuatAngleAxis, err)
	}
	half := angle / 2
	v, err := axis.SetLength(math.Sin(half))
	if err != nil {
		return Quaternion{}, opErrorf(opQuatAngleAxis, err)
	}

	return Quaternion{s: math.Cos(half), x: v.a[0], y: v.a[1], z: v.a[2]}, nil
}

// AngleAxisIndex rotates by angle about the basis axis with the given index
// (0 = X, 1 = Y, 2 = Z).
// Errors: ErrOutOfRange.
func AngleAxisIndex(angle float64, axis int) (Quaternion, error) {
	b, err := Basis(axis, 3)
	if err != nil {
		return Quaternion{}, opErrorf(opQuatAngleAxis, err)
	}

	return AngleAxis(angle, b)
}

// FromEulerAngles returns Ry(yaw)·Rx(-pitch)·Rz(roll).
func FromEulerAngles(yaw, pitch, roll float64) Quaternion {
	ry := halfAngle(yaw, 1)
	rx := halfAngle(-pitch, 0)
	rz := halfAngle(roll, 2)

	return ry.Mul(rx).Mul(rz)
}

// halfAngle is AngleAxisIndex for a known-good basis axis.
func halfAngle(angle float64, axis int) Quaternion {
	c, s := math.Cos(angle/2), math.Sin(angle/2)
	q := Quaternion{s: c}
	switch axis {
	case 0:
		q.x = s
	case 1:
		q.y = s
	default:
		q.z = s
	}

	return q
}

// number converts q to the gonum representation.
func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.s, Imag: q.x, Jmag: q.y, Kmag: q.z}
}

// fromNumber converts a gonum quaternion back.
func fromNumber(n quat.Number) Quaternion {
	return Quaternion{s: n.Real, x: n.Imag, y: n.Jmag, z: n.Kmag}
}

// Scalar returns the scalar part s.
func (q Quaternion) Scalar() float64 { return q.s }

// Vector returns the vector part (x, y, z).
func (q Quaternion) Vector() Vector { return vec([]float64{q.x, q.y, q.z}) }

// Components returns (s, x, y, z).
func (q Quaternion) Components() [4]float64 { return [4]float64{q.s, q.x, q.y, q.z} }

// At returns component i of (s, x, y, z) or ErrOutOfRange.
func (q Quaternion) At(i int) (float64, error) {
	if err := ValidateIndex(i, 4); err != nil {
		return 0, opErrorf(opQuatAt, err)
	}

	return q.Components()[i], nil
}

// String renders the quaternion as "(s; x, y, z)".
func (q Quaternion) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", q.s, q.x, q.y, q.z)
}

// Add returns the componentwise sum.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{s: q.s + p.s, x: q.x + p.x, y: q.y + p.y, z: q.z + p.z}
}

// Sub returns the componentwise difference.
func (q Quaternion) Sub(p Quaternion) Quaternion { return q.Add(p.Negate()) }

// Scale returns q with every component multiplied by f.
func (q Quaternion) Scale(f float64) Quaternion {
	return Quaternion{s: q.s * f, x: q.x * f, y: q.y * f, z: q.z * f}
}

// Div returns q with every component divided by f (IEEE semantics for f == 0).
func (q Quaternion) Div(f float64) Quaternion { return q.Scale(1 / f) }

// Negate returns -q, which represents the same rotation as q.
func (q Quaternion) Negate() Quaternion { return q.Scale(-1) }

// Mul returns the Hamilton product q·p:
//
//	scalar = s1·s2 − v1·v2
//	vector = s1·v2 + s2·v1 + v1×v2
//
// For unit quaternions this composes rotations: p is applied first.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return fromNumber(quat.Mul(q.number(), p.number()))
}

// Dot returns the 4-D inner product; for unit quaternions it is cos of half
// the angle between the rotations.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.s*p.s + q.x*p.x + q.y*p.y + q.z*p.z
}

// Conjugate returns s − v.
func (q Quaternion) Conjugate() Quaternion { return fromNumber(quat.Conj(q.number())) }

// NormSquared returns s² + x² + y² + z².
func (q Quaternion) NormSquared() float64 { return q.Dot(q) }

// Norm returns the Euclidean norm of (s, x, y, z).
func (q Quaternion) Norm() float64 { return quat.Abs(q.number()) }

// Normalize returns q / |q|.
// Errors: ErrZeroNorm.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, opErrorf(opQuatNormalize, ErrZeroNorm)
	}

	return q.Div(n), nil
}

// Inverse returns Conjugate / |q|², so that q·q⁻¹ = 1.
// Errors: ErrZeroNorm.
func (q Quaternion) Inverse() (Quaternion, error) {
	if q.NormSquared() == 0 {
		return Quaternion{}, opErrorf(opQuatInverse, ErrZeroNorm)
	}

	return fromNumber(quat.Inv(q.number())), nil
}

// Rotate applies the rotation q to the 3-D vector v by the full sandwich
// product q·(0,v)·q⁻¹ and returns the vector part. Using the true inverse
// keeps the result exact even for non-unit q.
// Errors: ErrDimensionMismatch (v not 3-D), ErrZeroNorm.
func (q Quaternion) Rotate(v Vector) (Vector, error) {
	p, err := PureQuaternion(v)
	if err != nil {
		return Vector{}, opErrorf(opQuatRotate, err)
	}
	inv, err := q.Inverse()
	if err != nil {
		return Vector{}, opErrorf(opQuatRotate, err)
	}

	return q.Mul(p).Mul(inv).Vector(), nil
}

// Axis returns the normalized vector part: the rotation axis.
// Errors: ErrZeroLength for a rotation by 0 (the axis is undefined).
func (q Quaternion) Axis() (Vector, error) {
	a, err := q.Vector().Normalize()
	if err != nil {
		return Vector{}, opErrorf(opQuatAxis, err)
	}

	return a, nil
}

// Angle returns the rotation angle 2·atan2(|v|, s) in [0, 2π].
// The atan2 form stays accurate near 0 and π where acos(s) loses precision.
func (q Quaternion) Angle() float64 {
	return 2 * math.Atan2(q.Vector().Length(), q.s)
}

// Slerp spherically interpolates from q toward p by t along the shortest arc.
//
// Implementation:
//   - Stage 1: normalize both endpoints.
//   - Stage 2: if q·p < 0, negate p (q and -q are the same rotation).
//   - Stage 3: above the parallel threshold fall back to normalized lerp, which
//     avoids dividing by a vanishing sin θ.
//   - Stage 4: otherwise combine with sin((1−t)θ)/sin θ and sin(tθ)/sin θ,
//     θ = acos(q·p).
//
// Errors: ErrZeroNorm for a zero endpoint.
func (q Quaternion) Slerp(p Quaternion, t float64, opts ...Option) (Quaternion, error) {
	o := gatherOptions(opts...)
	a, err := q.Normalize()
	if err != nil {
		return Quaternion{}, opErrorf(opQuatSlerp, err)
	}
	b, err := p.Normalize()
	if err != nil {
		return Quaternion{}, opErrorf(opQuatSlerp, err)
	}
	d := a.Dot(b)
	if d < 0 {
		b, d = b.Negate(), -d
	}

	var out Quaternion
	theta := math.Acos(clampUnit(d))
	sinTheta := math.Sin(theta)
	if d > o.parallelThreshold || sinTheta == 0 {
		out = a.Scale(1 - t).Add(b.Scale(t))
	} else {
		out = a.Scale(math.Sin((1-t)*theta) / sinTheta).Add(b.Scale(math.Sin(t*theta) / sinTheta))
	}
	out, err = out.Normalize()
	if err != nil {
		return Quaternion{}, opErrorf(opQuatSlerp, err)
	}

	return out, nil
}

// ApproxEqual compares components within the configured epsilon.
func (q Quaternion) ApproxEqual(p Quaternion, opts ...Option) bool {
	a, b := q.Components(), p.Components()

	return vec(a[:]).ApproxEqual(vec(b[:]), opts...)
}

// SameRotation reports whether q and p represent the same rotation, i.e.
// q ≈ p or q ≈ -p.
func (q Quaternion) SameRotation(p Quaternion, opts ...Option) bool {
	return q.ApproxEqual(p, opts...) || q.ApproxEqual(p.Negate(), opts...)
}
