package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/cargoqubo/assignment"
)

// ExampleEncode encodes three containers on two routes of capacity 2.
func ExampleEncode() {
	inst, err := assignment.NewInstance(3, 2, 2,
		[]int{4, 1, 7},    // barge costs
		[]int{17, 24, 15}, // truck costs
		[][]int{{1, 0}, {0, 1}, {0, 0}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	q, err := assignment.Encode(inst)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("K=%d P=%d vars=%d\n", inst.K(), inst.P(), inst.NumVars())
	fmt.Print(q)
	// Output:
	// K=2 P=8 vars=7
	// [37, 0, 0, -8, -16, 0, 0]
	// [0, 47, 0, 0, 0, -8, -16]
	// [0, 0, 8, 0, 0, 0, 0]
	// [-8, 0, 0, -8, 16, 0, 0]
	// [-16, 0, 0, 16, 0, 0, 0]
	// [0, -8, 0, 0, 0, -8, 16]
	// [0, -16, 0, 0, 0, 16, 0]
}

// ExampleDecode turns a solver sample back into transport modes.
func ExampleDecode() {
	inst, _ := assignment.NewInstance(3, 2, 2,
		[]int{4, 1, 7}, []int{17, 24, 15}, [][]int{{1, 0}, {0, 1}, {0, 0}})

	part, err := assignment.Decode(inst, []int{0, 1, 0, 1, 0, 0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	cost, _ := inst.Cost(part)
	fmt.Print(part)
	fmt.Println("cost:", cost)
	// Output:
	// Containers transported by truck: [1]
	// Containers transported by barge mode: [0 2]
	// cost: 35
}
