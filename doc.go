// Package vecmath is a generic vector / matrix / quaternion algebra library for
// real-time graphics, built around homogeneous coordinates.
//
// 🚀 What is inside?
//
//	linalg/    - immutable Vector, Matrix and Quaternion value types:
//	             dot/cross/projection, dual-mode matrix·vector application,
//	             cofactor/adjugate inversion, Hamilton product and slerp.
//	transform/ - homogeneous affine transforms: translate/rotate/scale
//	             construction, TRS decomposition (angle or quaternion form),
//	             pose interpolation and perspective projection.
//	fixedsize/ - adapters to the fixed-size golang.org/x/image/math/f32 and
//	             f64 vector and matrix types.
//
// ✨ Guarantees
//
//   - Pure values: no operation mutates its receiver or arguments, so every
//     value is safe for concurrent use without locks.
//   - Explicit errors: shape mismatches, degenerate inputs and domain
//     violations are returned as sentinel errors (errors.Is), never panics
//     and never silent fallbacks.
//   - Small dimensions first: determinant and inverse use recursive cofactor
//     expansion for n ≤ 5 and switch to LU above that.
//
// Quick example:
//
//	m, _ := transform.Compose3D(t, q, s)   // T·R·S
//	p, _ := m.Apply(point)                 // 3-D point through a 4×4 matrix
//	mid, _ := transform.Interpolate(m, other, 0.5)
//
//	go get github.com/katalvlaran/vecmath
package vecmath
