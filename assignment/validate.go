// Package assignment - validation helpers shared by every constructor.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; only sentinels from errors.go,
//     joined under ErrInvalidInput with the offending position.
//   - Fixed check order: sizes → lengths → costs → membership → capacities →
//     coefficient range.
package assignment

import (
	"math"
	"math/bits"
)

// MaxSlackBits caps K, admitting capacities up to 2^20-1 per route. It bounds
// the unscaled slack coefficients 2^k·2^p only; whether the scaled matrix fits
// int64 also depends on P and is checked by checkCoefficients.
const MaxSlackBits = 20

// validateSizes rejects negative container/route counts.
func validateSizes(n, m int) error {
	if n < 0 || m < 0 {
		return invalidf(ErrNegativeSize, "n=%d m=%d", n, m)
	}

	return nil
}

// validateCosts checks both cost arrays have length n and non-negative entries.
func validateCosts(n int, costBarge, costTruck []int) error {
	if len(costBarge) != n {
		return invalidf(ErrLengthMismatch, "len(costBarge)=%d, want %d", len(costBarge), n)
	}
	if len(costTruck) != n {
		return invalidf(ErrLengthMismatch, "len(costTruck)=%d, want %d", len(costTruck), n)
	}
	for i := 0; i < n; i++ {
		if costBarge[i] < 0 {
			return invalidf(ErrNegativeCost, "costBarge[%d]=%d", i, costBarge[i])
		}
		if costTruck[i] < 0 {
			return invalidf(ErrNegativeCost, "costTruck[%d]=%d", i, costTruck[i])
		}
	}

	return nil
}

// validateMembership checks the n×m shape and that every flag is 0 or 1.
func validateMembership(n, m int, membership [][]int) error {
	if len(membership) != n {
		return invalidf(ErrLengthMismatch, "len(membership)=%d, want %d", len(membership), n)
	}
	for i := 0; i < n; i++ {
		if len(membership[i]) != m {
			return invalidf(ErrLengthMismatch, "len(membership[%d])=%d, want %d", i, len(membership[i]), m)
		}
		for j := 0; j < m; j++ {
			if f := membership[i][j]; f != 0 && f != 1 {
				return invalidf(ErrNonBinary, "membership[%d][%d]=%d", i, j, f)
			}
		}
	}

	return nil
}

// validateCapacities checks every capacity is non-negative and returns the maximum.
// An all-zero (or empty) list yields max 0; callers decide whether that is fatal.
func validateCapacities(capacity []int) (int, error) {
	maxCap := 0
	for j, c := range capacity {
		if c < 0 {
			return 0, invalidf(ErrCapacity, "capacity[%d]=%d", j, c)
		}
		if c > maxCap {
			maxCap = c
		}
	}

	return maxCap, nil
}

// slackBits returns K = floor(log2(maxCap)) + 1, the bit width of maxCap.
// maxCap <= 0 leaves log2 undefined and fails fast with ErrCapacity.
func slackBits(maxCap int) (int, error) {
	if maxCap <= 0 {
		return 0, invalidf(ErrCapacity, "max capacity %d leaves slack width undefined", maxCap)
	}
	k := bits.Len(uint(maxCap))
	if k > MaxSlackBits {
		return 0, invalidf(ErrCapacityTooLarge, "capacity %d needs %d bits, limit %d", maxCap, k, MaxSlackBits)
	}

	return k, nil
}

// penaltyWeight returns P = max(costBarge) + 1 (1 for an empty list).
// ErrCoefficientOverflow when max(costBarge) is math.MaxInt64.
func penaltyWeight(costBarge []int) (int64, error) {
	maxCost := 0
	for _, c := range costBarge {
		if c > maxCost {
			maxCost = c
		}
	}
	if int64(maxCost) == math.MaxInt64 {
		return 0, invalidf(ErrCoefficientOverflow, "penalty weight max(costBarge)+1 with max %d", maxCost)
	}

	return int64(maxCost) + 1, nil
}

// checkCoefficients rejects instances whose encoding cannot be held in int64.
// MAIN DESCRIPTION:
//
//	With C = max capacity, D = max |CostTruck[i] - CostBarge[i]| and the
//	absolute values of all seven penalty groups summed per cell:
//
//	  container cells |Q| <= D + P·M·(1 + 2N + 2C)
//	  slack cells     |Q| <= P·(2^(2K) + 2·(N + C)·2^K)
//
//	Accumulation only ever adds terms counted in these sums, so no
//	intermediate cell value exceeds them either. Energies are bounded too:
//	Cost <= N·max(cost), Offset <= N·max(cost) + P·M·(N + C)² and each
//	route residual is at most N + C + 2^K, so |Energy| and Energy + Offset
//	stay within 2·N·max(cost) + P·M·((N + C)² + (N + C + 2^K)²).
//
// Complexity:
//   - Time O(N), Space O(1).
func checkCoefficients(n, m, k, maxCap int, p int64, costBarge, costTruck []int) error {
	var maxDelta, maxCost int
	for i := 0; i < n; i++ {
		d := costTruck[i] - costBarge[i] // both >= 0, cannot wrap
		if d < 0 {
			d = -d
		}
		maxDelta = max(maxDelta, d)
		maxCost = max(maxCost, costBarge[i], costTruck[i])
	}

	pw := mag(p)
	nc := mag(int64(n)).add(mag(int64(maxCap)))
	containerCell := mag(int64(m)).mul(mag(1).add(mag(2).mul(nc)))
	slackCell := mag(int64(1) << uint(2*k)).add(mag(2).mul(nc).mul(mag(int64(1) << uint(k))))
	coef := mag(int64(maxDelta)).add(pw.mul(larger(containerCell, slackCell)))
	if coef.over {
		return invalidf(ErrCoefficientOverflow, "n=%d m=%d capacity=%d penalty=%d", n, m, maxCap, p)
	}
	residual := nc.add(mag(int64(1) << uint(k)))
	energy := mag(2).mul(mag(int64(n))).mul(mag(int64(maxCost))).
		add(pw.mul(mag(int64(m))).mul(nc.mul(nc).add(residual.mul(residual))))
	if energy.over {
		return invalidf(ErrCoefficientOverflow, "energy range of n=%d m=%d capacity=%d penalty=%d", n, m, maxCap, p)
	}

	return nil
}

// magnitude is a non-negative bound that latches over once it leaves int64.
type magnitude struct {
	v    uint64
	over bool
}

// mag lifts a non-negative integer into a magnitude.
func mag(x int64) magnitude { return magnitude{v: uint64(x)} }

func (a magnitude) add(b magnitude) magnitude {
	s, carry := bits.Add64(a.v, b.v, 0)
	return magnitude{v: s, over: a.over || b.over || carry != 0 || s > math.MaxInt64}
}

func (a magnitude) mul(b magnitude) magnitude {
	hi, lo := bits.Mul64(a.v, b.v)
	return magnitude{v: lo, over: a.over || b.over || hi != 0 || lo > math.MaxInt64}
}

func larger(a, b magnitude) magnitude {
	if a.over || (!b.over && a.v >= b.v) {
		return a
	}

	return b
}
