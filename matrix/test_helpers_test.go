// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cargoqubo/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from a row literal or fails the test.
func MustFrom(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// bitsOf expands the low n bits of mask into a 0/1 vector (bit 0 first).
func bitsOf(mask, n int) []int64 {
	x := make([]int64, n)
	for i := 0; i < n; i++ {
		x[i] = int64((mask >> i) & 1)
	}

	return x
}
