package assignment_test

import (
	"testing"

	"github.com/katalvlaran/cargoqubo/assignment"
	"github.com/stretchr/testify/require"
)

func TestNewRandomInstanceReproducible(t *testing.T) {
	a, err := assignment.NewRandomInstance(20, 3, 4, assignment.WithSeed(42))
	require.NoError(t, err)
	b, err := assignment.NewRandomInstance(20, 3, 4, assignment.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a.Config(), b.Config())

	c, err := assignment.NewRandomInstance(20, 3, 4, assignment.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, a.Config(), c.Config())

	// Seed 0 is the documented default stream, identical to omitting the option.
	d, err := assignment.NewRandomInstance(5, 2, 1)
	require.NoError(t, err)
	e, err := assignment.NewRandomInstance(5, 2, 1, assignment.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, d.Config(), e.Config())
}

func TestNewRandomInstanceBands(t *testing.T) {
	inst, err := assignment.NewRandomInstance(50, 4, 6, assignment.WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, 50, inst.N())
	require.Equal(t, 4, inst.M())
	require.Equal(t, 3, inst.K())
	require.Equal(t, []int{6, 6, 6, 6}, inst.Capacities())
	for i, c := range inst.CostBarge() {
		require.GreaterOrEqual(t, c, assignment.DefaultBargeCostMin, "container %d", i)
		require.Less(t, c, assignment.DefaultBargeCostMax, "container %d", i)
	}
	for i, c := range inst.CostTruck() {
		require.GreaterOrEqual(t, c, assignment.DefaultTruckCostMin, "container %d", i)
		require.Less(t, c, assignment.DefaultTruckCostMax, "container %d", i)
	}
	for _, row := range inst.Membership() {
		require.Len(t, row, 4)
		for _, f := range row {
			require.Contains(t, []int{0, 1}, f)
		}
	}
}

// TestNewRandomInstanceStreams checks that changing a cost band leaves the
// membership flags of the same seed untouched.
func TestNewRandomInstanceStreams(t *testing.T) {
	a, err := assignment.NewRandomInstance(10, 3, 2, assignment.WithSeed(9))
	require.NoError(t, err)
	b, err := assignment.NewRandomInstance(10, 3, 2, assignment.WithSeed(9),
		assignment.WithBargeCostRange(100, 101), assignment.WithTruckCostRange(0, 1))
	require.NoError(t, err)

	require.Equal(t, a.Membership(), b.Membership())
	for i := 0; i < 10; i++ {
		require.Equal(t, 100, b.CostBarge()[i])
		require.Equal(t, 0, b.CostTruck()[i])
	}
	require.Equal(t, int64(101), b.P())
}

func TestNewRandomInstanceErrors(t *testing.T) {
	_, err := assignment.NewRandomInstance(-1, 2, 2)
	require.ErrorIs(t, err, assignment.ErrNegativeSize)

	_, err = assignment.NewRandomInstance(3, 2, 0)
	require.ErrorIs(t, err, assignment.ErrCapacity)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { assignment.WithWorkers(0) })
	require.Panics(t, func() { assignment.WithBargeCostRange(5, 5) })
	require.Panics(t, func() { assignment.WithTruckCostRange(-1, 3) })
	require.NotPanics(t, func() { assignment.WithBargeCostRange(0, 1) })
}
