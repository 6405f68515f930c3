package assignment

import (
	"fmt"
	"strings"
)

// Mode is the transport mode chosen for one container.
// The numeric value is the container's QUBO bit.
type Mode int

const (
	// Barge is bit value 0: the baseline, cheaper mode.
	Barge Mode = 0
	// Truck is bit value 1: the costlier mode that needs no shared route capacity.
	Truck Mode = 1
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Barge:
		return "barge"
	case Truck:
		return "truck"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Instance is one container assignment problem: N containers, M shared
// routes, and the constants derived from them.
//
// Instances are immutable after construction. Constructors copy every input
// slice and accessors return copies, so an *Instance may be shared freely.
//
// Variable layout (NumVars = N + M*K):
//   - 0..N-1                 container i, 1 = truck, 0 = barge
//   - N+j*K .. N+j*K+K-1     the K slack bits of route j, least significant first
type Instance struct {
	n, m int // containers, routes
	k    int // slack bits per route
	p    int64

	costBarge  []int
	costTruck  []int
	capacity   []int
	membership [][]int // membership[i][j] == 1 iff container i uses route j
}

// N returns the number of containers.
func (inst *Instance) N() int { return inst.n }

// M returns the number of routes.
func (inst *Instance) M() int { return inst.m }

// K returns the number of slack bits per route.
func (inst *Instance) K() int { return inst.k }

// P returns the penalty weight applied to every capacity constraint.
func (inst *Instance) P() int64 { return inst.p }

// NumVars returns N + M*K, the side of the QUBO matrix.
func (inst *Instance) NumVars() int { return inst.n + inst.m*inst.k }

// CostBarge returns a copy of the per-container barge costs.
func (inst *Instance) CostBarge() []int { return append([]int(nil), inst.costBarge...) }

// CostTruck returns a copy of the per-container truck costs.
func (inst *Instance) CostTruck() []int { return append([]int(nil), inst.costTruck...) }

// Capacities returns a copy of the per-route capacities.
func (inst *Instance) Capacities() []int { return append([]int(nil), inst.capacity...) }

// Membership returns a deep copy of the N×M route membership flags.
func (inst *Instance) Membership() [][]int { return cloneFlags(inst.membership) }

// Uses reports whether container i travels over route j.
func (inst *Instance) Uses(i, j int) (bool, error) {
	if i < 0 || i >= inst.n || j < 0 || j >= inst.m {
		return false, fmt.Errorf("Instance.Uses(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return inst.membership[i][j] == 1, nil
}

// RouteMembers returns the ascending container indices that use route j.
func (inst *Instance) RouteMembers(j int) ([]int, error) {
	if j < 0 || j >= inst.m {
		return nil, fmt.Errorf("Instance.RouteMembers(%d): %w", j, ErrOutOfRange)
	}
	var out []int
	for i := 0; i < inst.n; i++ {
		if inst.membership[i][j] == 1 {
			out = append(out, i)
		}
	}

	return out, nil
}

// ContainerIndex maps container i to its variable index (the identity).
func (inst *Instance) ContainerIndex(i int) (int, error) {
	if i < 0 || i >= inst.n {
		return 0, fmt.Errorf("Instance.ContainerIndex(%d): %w", i, ErrOutOfRange)
	}

	return i, nil
}

// SlackIndex maps slack bit k of route j to its variable index N + j*K + k.
func (inst *Instance) SlackIndex(j, k int) (int, error) {
	if j < 0 || j >= inst.m || k < 0 || k >= inst.k {
		return 0, fmt.Errorf("Instance.SlackIndex(%d,%d): %w", j, k, ErrOutOfRange)
	}

	return inst.slackIndex(j, k), nil
}

// slackIndex is the unchecked closed form used in hot loops.
func (inst *Instance) slackIndex(j, k int) int { return inst.n + j*inst.k + k }

// Partition is a decoded solution: every container index appears in exactly
// one of the two ascending lists.
type Partition struct {
	Truck []int
	Barge []int
}

// ModeOf returns the mode of container i, or false when i is in neither list.
func (p Partition) ModeOf(i int) (Mode, bool) {
	for _, c := range p.Truck {
		if c == i {
			return Truck, true
		}
	}
	for _, c := range p.Barge {
		if c == i {
			return Barge, true
		}
	}

	return Barge, false
}

// String renders both groups on separate lines.
func (p Partition) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Containers transported by truck: %v\n", p.Truck)
	fmt.Fprintf(&b, "Containers transported by barge mode: %v\n", p.Barge)

	return b.String()
}

func cloneFlags(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i := range in {
		out[i] = append([]int(nil), in[i]...)
	}

	return out
}
