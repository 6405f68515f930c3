// SPDX-License-Identifier: MIT

// Package matrix - upper-triangular export for QUBO samplers.
//
// Purpose:
//   - Most samplers take a QUBO as a sparse list of (i, j, bias) with i <= j.
//     A full symmetric coefficient matrix splits every cross term across the
//     two mirrored cells; this file folds them back into one entry.
//
// Determinism:
//   - Entries are produced in row-major upper-triangle order (i asc, then j asc).

package matrix

// UpperTriangle folds a square matrix into its canonical sparse upper-triangular form.
// MAIN DESCRIPTION:
//   - Diagonal cells are copied as-is (linear terms, x² = x for binary x).
//   - For a < b the entry value is m[a,b] + m[b,a].
//   - Zero-valued entries are omitted.
//
// Behavior highlights:
//   - Energy is preserved: Σ entries(v·x_i·x_j) == QuadraticForm(m, x) for binary x.
//   - Works for non-symmetric input too; only the sum of mirrored cells matters.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(nnz).
func UpperTriangle(m Matrix) ([]Entry, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("UpperTriangle", err)
	}

	n := m.Rows()
	out := make([]Entry, 0, n)
	var (
		a, b     int
		vab, vba int64
	)
	for a = 0; a < n; a++ {
		vab, _ = m.At(a, a)
		if vab != 0 {
			out = append(out, Entry{Row: a, Col: a, Value: vab})
		}
		for b = a + 1; b < n; b++ {
			vab, _ = m.At(a, b)
			vba, _ = m.At(b, a)
			if vab+vba != 0 {
				out = append(out, Entry{Row: a, Col: b, Value: vab + vba})
			}
		}
	}

	return out, nil
}
