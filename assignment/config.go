package assignment

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// InstanceConfig is the YAML form of an instance.
//
// Exactly one of three shapes is used:
//   - explicit, uniform:   containers, routes, capacity, costBarge, costTruck, membership
//   - explicit, per route: capacities (with costBarge, costTruck, membership);
//     containers/routes are optional and, when set, must agree
//   - random:              containers, routes, capacity, random{seed, ...}
//
// Example:
//
//	containers: 3
//	routes: 2
//	capacity: 2
//	costBarge: [4, 1, 7]
//	costTruck: [17, 24, 15]
//	membership: [[1, 0], [0, 1], [0, 0]]
type InstanceConfig struct {
	Containers int           `yaml:"containers"`
	Routes     int           `yaml:"routes"`
	Capacity   int           `yaml:"capacity,omitempty"`
	Capacities []int         `yaml:"capacities,omitempty,flow"`
	CostBarge  []int         `yaml:"costBarge,omitempty,flow"`
	CostTruck  []int         `yaml:"costTruck,omitempty,flow"`
	Membership [][]int       `yaml:"membership,omitempty"`
	Random     *RandomConfig `yaml:"random,omitempty"`
}

// RandomConfig asks for a generated instance. Cost bands are [min, max)
// pairs; empty bands keep the package defaults.
type RandomConfig struct {
	Seed      int64 `yaml:"seed"`
	BargeCost []int `yaml:"bargeCost,omitempty,flow"`
	TruckCost []int `yaml:"truckCost,omitempty,flow"`
}

// Build turns the configuration into a validated Instance. opts are passed
// through to NewRandomInstance (logger, and any seed/band overrides applied
// after the configured ones).
func (c InstanceConfig) Build(opts ...Option) (*Instance, error) {
	switch {
	case c.Random != nil:
		ropts, err := c.Random.options()
		if err != nil {
			return nil, err
		}
		return NewRandomInstance(c.Containers, c.Routes, c.Capacity, append(ropts, opts...)...)

	case len(c.Capacities) > 0:
		if c.Routes != 0 && c.Routes != len(c.Capacities) {
			return nil, invalidf(ErrLengthMismatch, "routes=%d but %d capacities", c.Routes, len(c.Capacities))
		}
		if c.Containers != 0 && c.Containers != len(c.CostBarge) {
			return nil, invalidf(ErrLengthMismatch, "containers=%d but %d barge costs", c.Containers, len(c.CostBarge))
		}
		return NewInstanceWithCapacities(c.CostBarge, c.CostTruck, c.Capacities, c.Membership)

	default:
		return NewInstance(c.Containers, c.Routes, c.Capacity, c.CostBarge, c.CostTruck, c.Membership)
	}
}

func (rc *RandomConfig) options() ([]Option, error) {
	opts := []Option{WithSeed(rc.Seed)}
	band := func(name string, b []int, with func(int, int) Option) error {
		if len(b) == 0 {
			return nil
		}
		if len(b) != 2 || b[0] < 0 || b[1] <= b[0] {
			return invalidf(ErrCostRange, "%s band %v must be [min, max) with 0 <= min < max", name, b)
		}
		opts = append(opts, with(b[0], b[1]))
		return nil
	}
	if err := band("bargeCost", rc.BargeCost, WithBargeCostRange); err != nil {
		return nil, err
	}
	if err := band("truckCost", rc.TruckCost, WithTruckCostRange); err != nil {
		return nil, err
	}

	return opts, nil
}

// LoadInstance reads one YAML instance document from r and builds it.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func LoadInstance(r io.Reader, opts ...Option) (*Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg InstanceConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("assignment: decode instance yaml: %w", err)
	}

	return cfg.Build(opts...)
}

// Config returns the explicit configuration that rebuilds inst. A single
// shared capacity is written as `capacity`, anything else as `capacities`.
func (inst *Instance) Config() InstanceConfig {
	cfg := InstanceConfig{
		Containers: inst.n,
		Routes:     inst.m,
		CostBarge:  inst.CostBarge(),
		CostTruck:  inst.CostTruck(),
		Membership: inst.Membership(),
	}
	if uniform, ok := inst.uniformCapacity(); ok {
		cfg.Capacity = uniform
	} else {
		cfg.Capacities = inst.Capacities()
	}

	return cfg
}

// uniformCapacity reports the shared capacity when all routes agree and it is
// positive. With no routes the slack width stands in, as NewInstance would
// have derived the same K from 2^(K-1).
func (inst *Instance) uniformCapacity() (int, bool) {
	if inst.m == 0 {
		return 1 << uint(inst.k-1), true
	}
	c := inst.capacity[0]
	for _, v := range inst.capacity[1:] {
		if v != c {
			return 0, false
		}
	}

	return c, c > 0
}

// MarshalYAML implements yaml.Marshaler via Config.
func (inst *Instance) MarshalYAML() (interface{}, error) {
	return inst.Config(), nil
}
