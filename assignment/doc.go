// Package assignment encodes the two-mode container assignment problem as a
// QUBO (quadratic unconstrained binary optimization) matrix and decodes
// sampler results back into transport plans.
//
// Problem: each of N freight containers travels by truck or by barge. Barge
// transport is cheaper but runs over M shared route segments with limited
// capacity; trucks are costlier and unconstrained.
//
// The package provides:
//
//   - Instance: validated, immutable parameters (NewInstance,
//     NewInstanceWithCapacities, NewRandomInstance, LoadInstance) with the
//     derived slack width K = floor(log2(max capacity)) + 1 and penalty
//     weight P = max(CostBarge) + 1.
//   - Encode: the (N + M·K)² integer matrix Q = Q1 + P·Q2. Capacity
//     inequalities become equalities through K binary slack bits per route
//     and enter Q as squared penalties.
//   - Decode / DecodeSample: container indices split by chosen mode.
//   - Energy, Cost, Feasible, Offset, Assignment: evaluation helpers tying
//     matrix energies back to transport costs.
//
// Solving the QUBO is left to an external sampler; nothing here searches.
//
// Quick example (the three-container instance used throughout the tests):
//
//	inst, _ := assignment.NewInstance(3, 2, 2,
//		[]int{4, 1, 7}, []int{17, 24, 15},
//		[][]int{{1, 0}, {0, 1}, {0, 0}})
//	q, _ := assignment.Encode(inst) // 7×7, K = 2, P = 8
//	part, _ := assignment.Decode(inst, []int{0, 0, 0, 1, 0, 1, 0})
//	// part.Barge == [0 1 2]
package assignment
