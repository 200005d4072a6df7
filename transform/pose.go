// SPDX-License-Identifier: MIT

// Package transform - poses and pose interpolation.
//
// Interpolating two affine matrices elementwise shears and shrinks the
// in-between frames. Instead, both matrices are decomposed into a pose
// (T, R, S), T and S are interpolated linearly, R along the shortest arc
// (angle delta in 2-D, slerp in 3-D), and the pose is recomposed with T·R·S.

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmath/linalg"
)

// Pose2D is the TRS decomposition of a 3×3 homogeneous 2-D transform.
type Pose2D struct {
	Translation linalg.Vector // 2-D
	Angle       float64       // radians, counter-clockwise
	Scale       linalg.Vector // 2-D, per axis
}

// Pose3D is the TRS decomposition of a 4×4 homogeneous 3-D transform.
type Pose3D struct {
	Translation linalg.Vector     // 3-D
	Rotation    linalg.Quaternion // unit
	Scale       linalg.Vector     // 3-D, per axis
}

// Decompose2D splits the 3×3 matrix m into translation, angle and scale.
// Errors: ErrNotAffine, linalg.ErrDimensionMismatch, linalg.ErrSingular.
func Decompose2D(m linalg.Matrix) (Pose2D, error) {
	if err := validateSpace(m, 2); err != nil {
		return Pose2D{}, opErrorf("Decompose2D", err)
	}
	t, err := Translation(m)
	if err != nil {
		return Pose2D{}, opErrorf("Decompose2D", err)
	}
	s, err := ScaleOf(m)
	if err != nil {
		return Pose2D{}, opErrorf("Decompose2D", err)
	}
	a, err := Rotation2D(m)
	if err != nil {
		return Pose2D{}, opErrorf("Decompose2D", err)
	}

	return Pose2D{Translation: t, Angle: a, Scale: s}, nil
}

// Decompose3D splits the 4×4 matrix m into translation, unit quaternion and scale.
// Errors: ErrNotAffine, linalg.ErrDimensionMismatch, linalg.ErrSingular.
func Decompose3D(m linalg.Matrix) (Pose3D, error) {
	if err := validateSpace(m, 3); err != nil {
		return Pose3D{}, opErrorf("Decompose3D", err)
	}
	t, err := Translation(m)
	if err != nil {
		return Pose3D{}, opErrorf("Decompose3D", err)
	}
	s, err := ScaleOf(m)
	if err != nil {
		return Pose3D{}, opErrorf("Decompose3D", err)
	}
	q, err := Rotation3D(m)
	if err != nil {
		return Pose3D{}, opErrorf("Decompose3D", err)
	}

	return Pose3D{Translation: t, Rotation: q, Scale: s}, nil
}

// Matrix recomposes the pose as Translate·Rotate2D·Scale.
func (p Pose2D) Matrix() (linalg.Matrix, error) {
	return Compose2D(p.Translation, p.Angle, p.Scale)
}

// Matrix recomposes the pose as Translate·RotateQuaternion·Scale.
func (p Pose3D) Matrix() (linalg.Matrix, error) {
	return Compose3D(p.Translation, p.Rotation, p.Scale)
}

// String renders the pose for debugging.
func (p Pose2D) String() string {
	return fmt.Sprintf("Pose2D{T: %v, R: %g, S: %v}", p.Translation, p.Angle, p.Scale)
}

// String renders the pose for debugging.
func (p Pose3D) String() string {
	return fmt.Sprintf("Pose3D{T: %v, R: %v, S: %v}", p.Translation, p.Rotation, p.Scale)
}

// Interpolate blends p toward q by t. Translation and scale are lerped; the
// angle moves along the shorter arc, so a delta beyond ±π is wrapped by 2π
// before scaling by t.
// Errors: linalg.ErrDimensionMismatch when the poses differ in dimension.
func (p Pose2D) Interpolate(q Pose2D, t float64) (Pose2D, error) {
	tr, err := p.Translation.Lerp(q.Translation, t)
	if err != nil {
		return Pose2D{}, opErrorf("Pose2D.Interpolate", err)
	}
	sc, err := p.Scale.Lerp(q.Scale, t)
	if err != nil {
		return Pose2D{}, opErrorf("Pose2D.Interpolate", err)
	}

	return Pose2D{Translation: tr, Angle: p.Angle + shortestArc(p.Angle, q.Angle)*t, Scale: sc}, nil
}

// shortestArc returns b − a wrapped into (−π, π].
func shortestArc(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}

	return d
}

// Interpolate blends p toward q by t: lerp for translation and scale, slerp
// for rotation. opts are forwarded to linalg.Quaternion.Slerp.
// Errors: linalg.ErrDimensionMismatch, linalg.ErrZeroNorm.
func (p Pose3D) Interpolate(q Pose3D, t float64, opts ...linalg.Option) (Pose3D, error) {
	tr, err := p.Translation.Lerp(q.Translation, t)
	if err != nil {
		return Pose3D{}, opErrorf("Pose3D.Interpolate", err)
	}
	sc, err := p.Scale.Lerp(q.Scale, t)
	if err != nil {
		return Pose3D{}, opErrorf("Pose3D.Interpolate", err)
	}
	rot, err := p.Rotation.Slerp(q.Rotation, t, opts...)
	if err != nil {
		return Pose3D{}, opErrorf("Pose3D.Interpolate", err)
	}

	return Pose3D{Translation: tr, Rotation: rot, Scale: sc}, nil
}

// Interpolate2D interpolates between two 3×3 homogeneous 2-D transforms.
func Interpolate2D(a, b linalg.Matrix, t float64) (linalg.Matrix, error) {
	pa, err := Decompose2D(a)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate2D", err)
	}
	pb, err := Decompose2D(b)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate2D", err)
	}
	p, err := pa.Interpolate(pb, t)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate2D", err)
	}

	return p.Matrix()
}

// Interpolate3D interpolates between two 4×4 homogeneous 3-D transforms.
func Interpolate3D(a, b linalg.Matrix, t float64, opts ...linalg.Option) (linalg.Matrix, error) {
	pa, err := Decompose3D(a)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate3D", err)
	}
	pb, err := Decompose3D(b)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate3D", err)
	}
	p, err := pa.Interpolate(pb, t, opts...)
	if err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate3D", err)
	}

	return p.Matrix()
}

// Interpolate dispatches on the matrix size: 3×3 to Interpolate2D, 4×4 to
// Interpolate3D. opts only affect the 3-D path.
// Errors: linalg.ErrDimensionMismatch for any other shape or differing shapes.
func Interpolate(a, b linalg.Matrix, t float64, opts ...linalg.Option) (linalg.Matrix, error) {
	if err := linalg.ValidateSameShape(a, b); err != nil {
		return linalg.Matrix{}, opErrorf("Interpolate", err)
	}
	switch {
	case a.IsSquare() && a.Rows() == 3:
		return Interpolate2D(a, b, t)
	case a.IsSquare() && a.Rows() == 4:
		return Interpolate3D(a, b, t, opts...)
	default:
		return linalg.Matrix{}, opErrorf("Interpolate", linalg.ErrDimensionMismatch)
	}
}
