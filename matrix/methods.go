// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, scalar scaling and the quadratic form
// xᵀAx used to evaluate QUBO energies. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opScale         = "Scale"
	opQuadraticForm = "QuadraticForm"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new *Dense containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv int64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// AddInPlace accumulates b into dst (dst += b). Shapes must match.
// Used to reduce per-worker partial accumulators without extra allocation.
// Complexity: O(r·c), no allocation.
func AddInPlace(dst *Dense, b Matrix) error {
	if dst == nil {
		return matrixErrorf("AddInPlace", ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(dst, b); err != nil {
		return matrixErrorf("AddInPlace", err)
	}
	if db, ok := b.(*Dense); ok {
		for idx := range dst.data {
			dst.data[idx] += db.data[idx]
		}

		return nil
	}

	var v int64
	for i := 0; i < dst.r; i++ {
		for j := 0; j < dst.c; j++ {
			v, _ = b.At(i, j)
			dst.data[i*dst.c+j] += v
		}
	}

	return nil
}

// Scale returns a new *Dense where each element of m is multiplied by alpha.
// Complexity: O(r·c).
func Scale(m Matrix, alpha int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var (
		i, j int
		v    int64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// QuadraticForm evaluates xᵀAx = Σ_a Σ_b A[a,b]·x[a]·x[b] over the full matrix.
// MAIN DESCRIPTION:
//   - For a binary x this is the QUBO energy of the assignment; both mirrored
//     off-diagonal cells contribute, so a cross term's weight is A[a,b]+A[b,a].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(x) != n).
//
// Complexity:
//   - Time O(n²), Space O(1).
func QuadraticForm(m Matrix, x []int64) (int64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opQuadraticForm, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(x, n); err != nil {
		return 0, matrixErrorf(opQuadraticForm, err)
	}

	var (
		sum  int64
		a, b int
		v    int64
	)
	for a = 0; a < n; a++ {
		if x[a] == 0 {
			continue // whole row vanishes
		}
		for b = 0; b < n; b++ {
			if x[b] == 0 {
				continue
			}
			v, _ = m.At(a, b)
			sum += v * x[a] * x[b]
		}
	}

	return sum, nil
}
