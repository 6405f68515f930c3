// Package assignment - RNG utilities for random instance generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical instances across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independent streams: barge costs, truck costs and route membership each
//     draw from their own derived stream, so widening one cost band never
//     reshuffles the membership flags of the same seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package assignment

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveRNG.
const (
	streamBargeCost uint64 = iota + 1
	streamTruckCost
	streamMembership
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from a root seed.
// Policy: seed==0 ⇒ defaultRNGSeed is the parent.
// Unlike a base-RNG derivation it does not consume state, so the three
// generator streams are independent of the order they are created in.
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// intInRange draws uniformly from [min, max). Callers guarantee max > min.
func intInRange(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min)
}
