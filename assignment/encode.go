// Package assignment - QUBO encoder.
//
// This file turns an Instance into the symmetric coefficient matrix
//
//	Q = Q1 + P·Q2
//
// where Q1 carries the linear transport objective and Q2 the capacity
// penalties of all routes, accumulated in one buffer before scaling.
//
// Layout & reading convention:
//   - Variable a is row/column a (see Instance for the index map).
//   - Q is read as a full matrix: the energy of x is Σ_a Σ_b Q[a,b]·x_a·x_b,
//     so a cross term x_a·x_b weighs Q[a,b] + Q[b,a]. Every off-diagonal
//     write is mirrored, which keeps Q symmetric.
//
// Determinism:
//   - Integer arithmetic only; loop orders are fixed. The parallel path sums
//     per-worker partial matrices and is bit-identical to the sequential one.
package assignment

import (
	"fmt"

	"github.com/katalvlaran/cargoqubo/matrix"
	"golang.org/x/sync/errgroup"
)

// Encode builds the NumVars×NumVars QUBO matrix of inst.
// MAIN DESCRIPTION:
//   - Objective: Q1[i,i] = CostTruck[i] - CostBarge[i]. The all-barge plan
//     is the baseline; choosing truck adds the cost delta. The constant
//     Σ CostBarge is dropped (see Instance.Offset).
//   - Constraints: for every route j, accumulateRoute adds its penalty
//     groups into Q2; Q2 is then scaled by P as a whole.
//
// Options:
//   - WithWorkers(n): stripe routes across up to n goroutines.
//   - WithLogger(l): emit a V(1) summary line.
//
// Errors:
//   - ErrNilInstance; matrix errors are not expected for a valid instance.
//
// Complexity:
//   - Time O(M·(N² + K² + N·K) + V²) with V = NumVars; Space O(V²) per worker.
func Encode(inst *Instance, opts ...Option) (*matrix.Dense, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := gatherOptions(opts...)

	q1, err := objectiveMatrix(inst)
	if err != nil {
		return nil, err
	}
	q2, workers, err := constraintMatrix(inst, o.workers)
	if err != nil {
		return nil, err
	}
	penalized, err := matrix.Scale(q2, inst.p)
	if err != nil {
		return nil, fmt.Errorf("assignment: scale constraints: %w", err)
	}
	q, err := matrix.Add(q1, penalized)
	if err != nil {
		return nil, fmt.Errorf("assignment: assemble qubo: %w", err)
	}

	o.logger.V(1).Info("encoded container assignment qubo",
		"containers", inst.n, "routes", inst.m, "slackBits", inst.k,
		"penalty", inst.p, "vars", inst.NumVars(), "workers", workers)

	return q, nil
}

// objectiveMatrix returns Q1 with the per-container cost deltas on the diagonal.
func objectiveMatrix(inst *Instance) (*matrix.Dense, error) {
	q1, err := matrix.NewSquare(inst.NumVars())
	if err != nil {
		return nil, err
	}
	for i := 0; i < inst.n; i++ {
		if err = q1.AddAt(i, i, int64(inst.costTruck[i]-inst.costBarge[i])); err != nil {
			return nil, err
		}
	}

	return q1, nil
}

// constraintMatrix accumulates every route's penalty into one Q2.
// MAIN DESCRIPTION:
//   - workers <= 1 (or a single route): one buffer, routes in order.
//   - otherwise: worker w owns a private partial matrix and handles routes
//     w, w+workers, w+2·workers, ...; partials are then summed in worker
//     order. Routes of one container overlap on its diagonal, so workers
//     must never share a buffer.
//
// Returns the matrix and the number of workers actually used.
func constraintMatrix(inst *Instance, workers int) (*matrix.Dense, int, error) {
	nv := inst.NumVars()
	if workers > inst.m {
		workers = inst.m
	}
	if workers <= 1 {
		q2, err := matrix.NewSquare(nv)
		if err != nil {
			return nil, 1, err
		}
		for j := 0; j < inst.m; j++ {
			if err = accumulateRoute(q2, inst, j); err != nil {
				return nil, 1, err
			}
		}

		return q2, 1, nil
	}

	partials := make([]*matrix.Dense, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			part, err := matrix.NewSquare(nv)
			if err != nil {
				return err
			}
			for j := w; j < inst.m; j += workers {
				if err = accumulateRoute(part, inst, j); err != nil {
					return fmt.Errorf("route %d: %w", j, err)
				}
			}
			partials[w] = part

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, workers, err
	}

	q2 := partials[0]
	for w := 1; w < workers; w++ {
		if err := matrix.AddInPlace(q2, partials[w]); err != nil {
			return nil, workers, err
		}
	}

	return q2, workers, nil
}

// accumulateRoute adds the capacity penalty of route j into q2.
// MAIN DESCRIPTION:
//
//	With r_i the membership flag of container i, R = Σ r_i the member count,
//	c the capacity and s(k) = N + j·K + k the slack bit indices:
//
//	  1. q2[i,l]       += r_i·r_l                    container pairs (i == l included)
//	  2. q2[s(k),s(p)] += 2^k·2^p                    slack pairs
//	  3. q2[l,l]       -= 2·r_l·R                    member sum times itself, folded by x² = x
//	  4. q2[s(k),s(k)] += 2·R·2^k
//	  5. q2[i,s(k)]    -= r_i·2^k, mirrored          container/slack cross terms
//	  6. q2[i,i]       += 2·c·r_i
//	  7. q2[s(k),s(k)] -= 2·c·2^k
//
//	As a quadratic form over binary x and slack value s this equals
//	(S - s - (R - c))² - (R - c)² with S = Σ r_i·x_i. Its minimum is reached
//	at s = c - (R - S): the R - S member containers left on the barge must
//	fit the route capacity, and the slack absorbs the unused remainder.
//
// Complexity:
//   - Time O(N² + K² + N·K), no allocation besides the member list.
func accumulateRoute(q2 *matrix.Dense, inst *Instance, j int) error {
	members := make([]int, 0, inst.n)
	for i := 0; i < inst.n; i++ {
		if inst.membership[i][j] == 1 {
			members = append(members, i)
		}
	}
	var (
		r = int64(len(members))
		c = int64(inst.capacity[j])
	)

	add := func(a, b int, v int64) error {
		if v == 0 {
			return nil
		}
		return q2.AddAt(a, b, v)
	}

	// 1. container pairs; non-members contribute r_i·r_l = 0.
	for _, i := range members {
		for _, l := range members {
			if err := add(i, l, 1); err != nil {
				return err
			}
		}
	}

	// 2. slack pairs.
	for k := 0; k < inst.k; k++ {
		for p := 0; p < inst.k; p++ {
			if err := add(inst.slackIndex(j, k), inst.slackIndex(j, p), pow2(k)*pow2(p)); err != nil {
				return err
			}
		}
	}

	// 3. and 6. member diagonals.
	for _, l := range members {
		if err := add(l, l, -2*r); err != nil {
			return err
		}
		if err := add(l, l, 2*c); err != nil {
			return err
		}
	}

	// 4. and 7. slack diagonals.
	for k := 0; k < inst.k; k++ {
		s := inst.slackIndex(j, k)
		if err := add(s, s, 2*r*pow2(k)); err != nil {
			return err
		}
		if err := add(s, s, -2*c*pow2(k)); err != nil {
			return err
		}
	}

	// 5. container/slack cross terms, written to both mirrored cells.
	for _, i := range members {
		for k := 0; k < inst.k; k++ {
			s := inst.slackIndex(j, k)
			if err := add(i, s, -pow2(k)); err != nil {
				return err
			}
			if err := add(s, i, -pow2(k)); err != nil {
				return err
			}
		}
	}

	return nil
}

// pow2 returns 2^k as int64; k is bounded by MaxSlackBits.
func pow2(k int) int64 { return int64(1) << uint(k) }
