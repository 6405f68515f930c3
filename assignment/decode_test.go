package assignment_test

import (
	"testing"

	"github.com/katalvlaran/cargoqubo/assignment"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	inst := workedInstance(t)

	part, err := assignment.Decode(inst, []int{1, 0, 1, 1, 1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, part.Truck)
	require.Equal(t, []int{1}, part.Barge)

	md, ok := part.ModeOf(2)
	require.True(t, ok)
	require.Equal(t, assignment.Truck, md)
	_, ok = part.ModeOf(3)
	require.False(t, ok)

	require.Equal(t,
		"Containers transported by truck: [0 2]\nContainers transported by barge mode: [1]\n",
		part.String())
}

// TestDecodeIgnoresSlack verifies that slack bits never affect the partition,
// even when they hold non-binary garbage.
func TestDecodeIgnoresSlack(t *testing.T) {
	inst := workedInstance(t)

	a, err := assignment.Decode(inst, []int{0, 1, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	b, err := assignment.Decode(inst, []int{0, 1, 0, 1, 1, 7, -3})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDecodeErrors(t *testing.T) {
	inst := workedInstance(t)

	_, err := assignment.Decode(nil, nil)
	require.ErrorIs(t, err, assignment.ErrNilInstance)

	_, err = assignment.Decode(inst, []int{0, 1, 0})
	require.ErrorIs(t, err, assignment.ErrAssignmentLength)
	require.ErrorIs(t, err, assignment.ErrInvalidInput)

	_, err = assignment.Decode(inst, make([]int, 8))
	require.ErrorIs(t, err, assignment.ErrAssignmentLength)

	_, err = assignment.Decode(inst, []int{0, 2, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, assignment.ErrNonBinary)
}

func TestDecodeSample(t *testing.T) {
	inst := workedInstance(t)

	sample := map[int]int{6: 0, 5: 1, 4: 0, 3: 1, 2: 1, 1: 0, 0: 0}
	part, err := assignment.DecodeSample(inst, sample)
	require.NoError(t, err)
	require.Equal(t, []int{2}, part.Truck)
	require.Equal(t, []int{0, 1}, part.Barge)

	delete(sample, 4)
	_, err = assignment.DecodeSample(inst, sample)
	require.ErrorIs(t, err, assignment.ErrAssignmentLength)

	sample[9] = 0 // right size, wrong keys
	_, err = assignment.DecodeSample(inst, sample)
	require.ErrorIs(t, err, assignment.ErrAssignmentLength)

	_, err = assignment.DecodeSample(nil, sample)
	require.ErrorIs(t, err, assignment.ErrNilInstance)
}

// TestDecodePartitionProperty: for every container bit pattern the two groups
// are disjoint, ascending and cover 0..N-1.
func TestDecodePartitionProperty(t *testing.T) {
	inst, err := assignment.NewRandomInstance(6, 2, 2, assignment.WithSeed(3))
	require.NoError(t, err)

	for mask := 0; mask < 1<<inst.N(); mask++ {
		bits := make([]int, inst.NumVars())
		copy(bits, bitsOf(mask, inst.N()))

		part, err := assignment.Decode(inst, bits)
		require.NoError(t, err)
		require.Len(t, part.Truck, countOnes(mask))
		require.Equal(t, inst.N(), len(part.Truck)+len(part.Barge))

		seen := make(map[int]bool, inst.N())
		for _, group := range [][]int{part.Truck, part.Barge} {
			for k, i := range group {
				require.False(t, seen[i], "container %d listed twice", i)
				seen[i] = true
				if k > 0 {
					require.Less(t, group[k-1], i)
				}
			}
		}
		require.Len(t, seen, inst.N())
	}
}

func countOnes(mask int) int {
	c := 0
	for ; mask > 0; mask >>= 1 {
		c += mask & 1
	}

	return c
}
