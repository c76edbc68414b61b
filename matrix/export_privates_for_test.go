// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the Mul driver selection to matrix_test ONLY, so tests can pin
//     which row a dot product iterates without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.

// PickDriver_TestOnly runs pickDriver for row i of a and row j of b.
// It returns the entry count of the chosen driver row and whether that row
// came from b. Requires a != b.
func PickDriver_TestOnly[T Number](a *Sparse[T], i int, b *Sparse[T], j int) (driverLen int, fromRight bool) {
	driver, probe, _ := pickDriver(a, i, b, j)

	return driver.len(), probe == a
}
