// SPDX-License-Identifier: MIT

package linalg

// Test bridge (white-box) for private kernels and the options snapshot.
//
// Compiled only with the package's tests; exposes the cofactor-expansion
// determinant so linalg_test can compare it with the LU path used above
// CofactorMaxDim.

var (
	// ExportedCofactorDeterminant runs the cofactor expansion regardless of size.
	ExportedCofactorDeterminant = Matrix.det

	// ExportedClampUnit exposes the acos/asin argument clamp.
	ExportedClampUnit = clampUnit

	// ExportedGatherOptions resolves options the way every public entry point does.
	ExportedGatherOptions = gatherOptions
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
)
