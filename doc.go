// Package cargoqubo encodes the container transport assignment problem as a
// QUBO (quadratic unconstrained binary optimization) model.
//
// Each container travels either by truck or by barge. Barge routes have a
// limited capacity; trucks do not. The goal is the cheapest assignment whose
// barge loads fit every route. The model gives each container one binary
// variable (1 = truck) and each route K binary slack variables, folds the
// capacity constraints into the objective as weighted square penalties, and
// returns one symmetric integer matrix any QUBO sampler can minimize.
//
// Layout:
//
//	matrix/         Dense int64 matrix, element-wise ops, validators, sparse export
//	assignment/     Instance (explicit, per-route, random, YAML), Encode, Decode, evaluation
//	cmd/cargoqubo/  driver: build or load an instance, write its matrix, decode a sample
//
// Quick start:
//
//	inst, _ := assignment.NewInstance(3, 2, 2,
//		[]int{4, 1, 7}, []int{17, 24, 15}, [][]int{{1, 0}, {0, 1}, {0, 0}})
//	q, _ := assignment.Encode(inst)
//	// ... hand q to a sampler, get back bits ...
//	part, _ := assignment.Decode(inst, bits)
//	fmt.Print(part)
//
// Solving the QUBO is out of scope; this module stops at the matrix and the
// decoder.
package cargoqubo
