// Package assignment - evaluation of encodings and decoded solutions.
//
// The encoder drops two constants that do not move the arg-min: the all-barge
// baseline Σ CostBarge and, per route, the term P·(R_j - c_j)² left over when
// completing the square. Offset restores both, which gives the identity
//
//	Energy(Q, x) + Offset() == Cost(x) + P·Σ_j (c_j - load_j - s_j)²
//
// for every bit vector x, where load_j is the number of route-j members on a
// barge and s_j the integer value of route j's slack bits.
package assignment

import (
	"github.com/katalvlaran/cargoqubo/matrix"
)

// Energy evaluates the QUBO energy Σ_a Σ_b q[a,b]·x_a·x_b of a bit vector.
// Bits must be 0 or 1 (ErrNonBinary) and match q's order.
func Energy(q matrix.Matrix, bits []int) (int64, error) {
	x := make([]int64, len(bits))
	for a, b := range bits {
		if b != 0 && b != 1 {
			return 0, invalidf(ErrNonBinary, "variable %d has bit %d", a, b)
		}
		x[a] = int64(b)
	}

	return matrix.QuadraticForm(q, x)
}

// Cost returns the true transport cost of a partition.
func (inst *Instance) Cost(p Partition) (int64, error) {
	modes, err := validatePartition(inst.n, p)
	if err != nil {
		return 0, err
	}
	var total int64
	for i, md := range modes {
		if md == Truck {
			total += int64(inst.costTruck[i])
		} else {
			total += int64(inst.costBarge[i])
		}
	}

	return total, nil
}

// BargeLoads returns, per route, how many member containers travel by barge.
func (inst *Instance) BargeLoads(p Partition) ([]int, error) {
	modes, err := validatePartition(inst.n, p)
	if err != nil {
		return nil, err
	}

	return inst.bargeLoads(modes), nil
}

func (inst *Instance) bargeLoads(modes []Mode) []int {
	loads := make([]int, inst.m)
	for i, md := range modes {
		if md != Barge {
			continue
		}
		for j := 0; j < inst.m; j++ {
			loads[j] += inst.membership[i][j]
		}
	}

	return loads
}

// Feasible reports whether every route's barge load fits its capacity.
func (inst *Instance) Feasible(p Partition) (bool, error) {
	loads, err := inst.BargeLoads(p)
	if err != nil {
		return false, err
	}
	for j, l := range loads {
		if l > inst.capacity[j] {
			return false, nil
		}
	}

	return true, nil
}

// Offset returns Σ CostBarge + P·Σ_j (R_j - c_j)², the constant the encoding drops.
func (inst *Instance) Offset() int64 {
	var off int64
	for _, c := range inst.costBarge {
		off += int64(c)
	}
	for j := 0; j < inst.m; j++ {
		var r int64
		for i := 0; i < inst.n; i++ {
			r += int64(inst.membership[i][j])
		}
		d := r - int64(inst.capacity[j])
		off += inst.p * d * d
	}

	return off
}

// SlackBits returns the M·K slack bits that minimize each route's penalty for
// p, in matrix order: c_j - load_j when the route fits, 0 when it is overloaded.
func (inst *Instance) SlackBits(p Partition) ([]int, error) {
	modes, err := validatePartition(inst.n, p)
	if err != nil {
		return nil, err
	}

	return inst.slackBits(modes), nil
}

func (inst *Instance) slackBits(modes []Mode) []int {
	bits := make([]int, inst.m*inst.k)
	for j, load := range inst.bargeLoads(modes) {
		s := inst.capacity[j] - load
		if s < 0 {
			s = 0
		}
		// s <= max capacity < 2^K, so K bits always suffice.
		for k := 0; k < inst.k; k++ {
			bits[j*inst.k+k] = (s >> uint(k)) & 1
		}
	}

	return bits
}

// Assignment expands a partition into a full NumVars bit vector: container
// bits (1 = truck) followed by the slack bits of SlackBits.
func (inst *Instance) Assignment(p Partition) ([]int, error) {
	modes, err := validatePartition(inst.n, p)
	if err != nil {
		return nil, err
	}
	bits := make([]int, 0, inst.NumVars())
	for _, md := range modes {
		bits = append(bits, int(md))
	}

	return append(bits, inst.slackBits(modes)...), nil
}
