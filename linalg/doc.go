// Package linalg provides immutable Vector, Matrix and Quaternion value types
// for real-time graphics in small dimensions (typically 2–4).
//
// The package provides:
//
//   - Vector: elementwise and geometric operations (dot, cross, projection,
//     reflection, interpolation) plus the cartesian ↔ homogeneous embedding.
//   - Matrix: row-major rows×cols storage with products, dual-mode
//     matrix·vector application (Apply), and determinant/cofactor/adjugate
//     based inversion.
//   - Quaternion: Hamilton product, sandwich rotation, angle/axis, Euler
//     construction and shortest-arc slerp. FromEulerAngles(yaw, pitch, roll)
//     is Ry(yaw)·Rx(-pitch)·Rz(roll) with Y up.
//
// Every value is immutable; every operation returns a new value. Values can
// therefore be shared freely between goroutines.
//
// Errors are sentinels matched with errors.Is:
//
//	ErrDimensionMismatch  incompatible operand shapes (ErrNonSquare wraps it)
//	ErrDegenerate         zero vector / zero quaternion / singular matrix
//	ErrDomain             out-of-range index or axis (ErrOutOfRange wraps it)
//	ErrBadShape           non-positive dimension at construction
//
// Determinant and Inverse use cofactor expansion up to CofactorMaxDim and an
// LU factorization (gonum) above it.
//
//	go get github.com/katalvlaran/vecmath/linalg
package linalg
