// Package assignment_test - shared fixtures.
package assignment_test

import (
	"testing"

	"github.com/katalvlaran/cargoqubo/assignment"
	"github.com/stretchr/testify/require"
)

// workedCostBarge etc. describe the three-container, two-route regression case.
var (
	workedCostBarge  = []int{4, 1, 7}
	workedCostTruck  = []int{17, 24, 15}
	workedMembership = [][]int{{1, 0}, {0, 1}, {0, 0}}
	workedQUBO       = [][]int64{
		{37, 0, 0, -8, -16, 0, 0},
		{0, 47, 0, 0, 0, -8, -16},
		{0, 0, 8, 0, 0, 0, 0},
		{-8, 0, 0, -8, 16, 0, 0},
		{-16, 0, 0, 16, 0, 0, 0},
		{0, -8, 0, 0, 0, -8, 16},
		{0, -16, 0, 0, 0, 16, 0},
	}
)

// workedInstance builds the regression instance or fails the test.
func workedInstance(t testing.TB) *assignment.Instance {
	t.Helper()
	inst, err := assignment.NewInstance(3, 2, 2, workedCostBarge, workedCostTruck, workedMembership)
	require.NoError(t, err)

	return inst
}

// bitsOf expands the low n bits of mask into a 0/1 vector (bit 0 first).
func bitsOf(mask, n int) []int {
	x := make([]int, n)
	for i := 0; i < n; i++ {
		x[i] = (mask >> i) & 1
	}

	return x
}

// penaltyIdentityRHS computes Cost(x) + P·Σ_j (c_j - load_j - s_j)² by hand,
// straight from the problem definition and independent of the encoder.
func penaltyIdentityRHS(inst *assignment.Instance, x []int) int64 {
	cb, ct, caps, mem := inst.CostBarge(), inst.CostTruck(), inst.Capacities(), inst.Membership()

	var cost int64
	for i := 0; i < inst.N(); i++ {
		if x[i] == 1 {
			cost += int64(ct[i])
		} else {
			cost += int64(cb[i])
		}
	}
	for j := 0; j < inst.M(); j++ {
		var load, s int64
		for i := 0; i < inst.N(); i++ {
			if x[i] == 0 {
				load += int64(mem[i][j])
			}
		}
		for k := 0; k < inst.K(); k++ {
			idx, err := inst.SlackIndex(j, k)
			if err != nil {
				panic(err)
			}
			s += int64(x[idx]) << uint(k)
		}
		res := int64(caps[j]) - load - s
		cost += inst.P() * res * res
	}

	return cost
}

// randomPartition splits 0..n-1 using mask bits (bit i set ⇒ truck).
func randomPartition(n int, mask uint64) assignment.Partition {
	var p assignment.Partition
	for i := 0; i < n; i++ {
		if mask>>uint(i)&1 == 1 {
			p.Truck = append(p.Truck, i)
		} else {
			p.Barge = append(p.Barge, i)
		}
	}

	return p
}
