// Package transform builds, decomposes and interpolates homogeneous affine
// transforms on top of linalg.
//
// An affine transform of n-dimensional space is an (n+1)×(n+1) matrix whose
// last row is (0,…,0,1): column n holds the translation, the leading n×n block
// a rotation times a per-axis scale.
//
// The package provides:
//
//   - Builders: Translate, Scale, Rotate2D, Rotate3D, RotateQuaternion (and
//     pivot variants), Compose2D/Compose3D for T·R·S, and Perspective.
//   - Decomposition: Translation, ScaleOf, RotationMatrix, Rotation2D (angle),
//     Rotation3D (unit quaternion), Decompose2D/Decompose3D into poses.
//   - Interpolation: Interpolate2D, Interpolate3D and the size-dispatching
//     Interpolate. Translation and scale are lerped, rotation follows the
//     shortest arc, so in-between frames never shear.
//
// Example:
//
//	a, _ := transform.Compose3D(t0, q0, s0)
//	b, _ := transform.Compose3D(t1, q1, s1)
//	mid, _ := transform.Interpolate(a, b, 0.5)
package transform
