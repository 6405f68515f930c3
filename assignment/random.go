package assignment

// NewRandomInstance builds a demo instance with n containers, m routes and a
// shared capacity capValue.
//
// Barge costs are drawn uniformly from [1,10), truck costs from [14,25), and
// each (container, route) membership flag is a fair coin. Bands and seed are
// set with WithBargeCostRange, WithTruckCostRange and WithSeed; the same
// options always produce the same instance.
//
// The result satisfies exactly the invariants of NewInstance, which performs
// the final validation.
func NewRandomInstance(n, m, capValue int, opts ...Option) (*Instance, error) {
	if err := validateSizes(n, m); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	bargeRNG := deriveRNG(o.seed, streamBargeCost)
	truckRNG := deriveRNG(o.seed, streamTruckCost)
	routeRNG := deriveRNG(o.seed, streamMembership)

	costBarge := make([]int, n)
	costTruck := make([]int, n)
	membership := make([][]int, n)
	for i := 0; i < n; i++ {
		costBarge[i] = intInRange(bargeRNG, o.bargeMin, o.bargeMax)
		costTruck[i] = intInRange(truckRNG, o.truckMin, o.truckMax)
		membership[i] = make([]int, m)
		for j := 0; j < m; j++ {
			membership[i][j] = routeRNG.Intn(2)
		}
	}

	inst, err := NewInstance(n, m, capValue, costBarge, costTruck, membership)
	if err != nil {
		return nil, err
	}
	o.logger.V(1).Info("generated random instance",
		"containers", n, "routes", m, "capacity", capValue, "seed", o.seed,
		"slackBits", inst.k, "penalty", inst.p)

	return inst, nil
}
