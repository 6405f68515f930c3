// SPDX-License-Identifier: MIT

// Package assignment: functional configuration for the random generator and
// the encoder. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package assignment

import "github.com/go-logr/logr"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed selects the fixed default RNG stream (see rng.go).
	DefaultSeed int64 = 0

	// DefaultBargeCostMin / DefaultBargeCostMax bound sampled barge costs, [min, max).
	DefaultBargeCostMin = 1
	DefaultBargeCostMax = 10

	// DefaultTruckCostMin / DefaultTruckCostMax bound sampled truck costs, [min, max).
	// The band sits above the barge band: trucks are faster but costlier.
	DefaultTruckCostMin = 14
	DefaultTruckCostMax = 25

	// DefaultWorkers accumulates all route penalties in a single buffer.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCostRangeInvalid = "assignment: cost range must satisfy 0 <= min < max"
	panicWorkersInvalid   = "assignment: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// random generation
	seed               int64
	bargeMin, bargeMax int
	truckMin, truckMax int

	// encoding
	workers int

	// ambient
	logger logr.Logger
}

// WithSeed fixes the RNG seed used by NewRandomInstance. Seed 0 selects the
// package default stream, so omitting the option is also reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithBargeCostRange sets the [min, max) band for sampled barge costs.
// Panics if min < 0 or max <= min.
func WithBargeCostRange(min, max int) Option {
	if min < 0 || max <= min {
		panic(panicCostRangeInvalid)
	}

	return func(o *Options) { o.bargeMin, o.bargeMax = min, max }
}

// WithTruckCostRange sets the [min, max) band for sampled truck costs.
// Panics if min < 0 or max <= min.
func WithTruckCostRange(min, max int) Option {
	if min < 0 || max <= min {
		panic(panicCostRangeInvalid)
	}

	return func(o *Options) { o.truckMin, o.truckMax = min, max }
}

// WithWorkers sets how many goroutines Encode may use for route penalties.
// n == 1 is fully sequential. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes diagnostic output to l. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		seed:     DefaultSeed,
		bargeMin: DefaultBargeCostMin,
		bargeMax: DefaultBargeCostMax,
		truckMin: DefaultTruckCostMin,
		truckMax: DefaultTruckCostMax,
		workers:  DefaultWorkers,
		logger:   logr.Discard(),
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
