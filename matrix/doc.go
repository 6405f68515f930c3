// Package matrix provides the dense integer matrix used to hold QUBO
// coefficient tables, plus the handful of operations an encoder needs.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with bounds-checked At/Set/AddAt
//     (errors, never panics) and legal empty shapes (0×0).
//   - Add, AddInPlace, Scale for assembling Q = Q1 + P·Q2.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) returning sentinel
//     errors from errors.go, matched with errors.Is.
//   - QuadraticForm (xᵀAx) for evaluating energies and UpperTriangle for
//     exporting the sparse (i <= j) form most samplers consume.
//
// Matrices are best for dense or small problems where O(n²) memory is
// acceptable, which is exactly the shape of a slack-variable QUBO.
package matrix
