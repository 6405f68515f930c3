package assignment

import "fmt"

// Decode maps a solver's bit vector back to transport modes.
//
// bits must hold exactly NumVars values, indexed like the QUBO matrix.
// Container indices 0..N-1 are read in ascending order: 1 puts the container
// on a truck, 0 on a barge. Slack bits are ignored entirely; they are
// bookkeeping for the capacity penalty, not decisions.
//
// Errors: ErrNilInstance, ErrAssignmentLength, ErrNonBinary (all but the
// first under ErrInvalidInput). No partial partition is returned on error.
func Decode(inst *Instance, bits []int) (Partition, error) {
	if inst == nil {
		return Partition{}, ErrNilInstance
	}
	if len(bits) != inst.NumVars() {
		return Partition{}, invalidf(ErrAssignmentLength, "got %d bits, want %d", len(bits), inst.NumVars())
	}

	part := Partition{
		Truck: make([]int, 0, inst.n),
		Barge: make([]int, 0, inst.n),
	}
	for i := 0; i < inst.n; i++ {
		switch Mode(bits[i]) {
		case Truck:
			part.Truck = append(part.Truck, i)
		case Barge:
			part.Barge = append(part.Barge, i)
		default:
			return Partition{}, invalidf(ErrNonBinary, "container %d has bit %d", i, bits[i])
		}
	}

	return part, nil
}

// DecodeSample decodes a sampler result given as a variable→bit mapping.
//
// The sample must contain every key 0..NumVars-1 and nothing else. It is
// first laid out as an ordered vector, so Go's randomized map iteration
// never influences the result.
func DecodeSample(inst *Instance, sample map[int]int) (Partition, error) {
	if inst == nil {
		return Partition{}, ErrNilInstance
	}
	bits, err := sampleBits(inst.NumVars(), sample)
	if err != nil {
		return Partition{}, err
	}

	return Decode(inst, bits)
}

// sampleBits converts a complete index→bit mapping into a dense vector.
func sampleBits(nv int, sample map[int]int) ([]int, error) {
	if len(sample) != nv {
		return nil, invalidf(ErrAssignmentLength, "sample has %d variables, want %d", len(sample), nv)
	}
	bits := make([]int, nv)
	for v := 0; v < nv; v++ {
		b, ok := sample[v]
		if !ok {
			return nil, invalidf(ErrAssignmentLength, "sample misses variable %d", v)
		}
		bits[v] = b
	}

	return bits, nil
}

// validatePartition checks p is a disjoint cover of 0..n-1 and returns the
// per-container mode table.
func validatePartition(n int, p Partition) ([]Mode, error) {
	if len(p.Truck)+len(p.Barge) != n {
		return nil, fmt.Errorf("%w: %d containers listed, want %d", ErrInvalidPartition, len(p.Truck)+len(p.Barge), n)
	}
	modes := make([]Mode, n)
	seen := make([]bool, n)
	mark := func(i int, m Mode) error {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("%w: container %d", ErrInvalidPartition, i)
		}
		seen[i] = true
		modes[i] = m

		return nil
	}
	for _, i := range p.Truck {
		if err := mark(i, Truck); err != nil {
			return nil, err
		}
	}
	for _, i := range p.Barge {
		if err := mark(i, Barge); err != nil {
			return nil, err
		}
	}

	return modes, nil
}
