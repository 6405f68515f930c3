package assignment

// NewInstance builds an instance from explicit parameters with one capacity
// value shared by all m routes.
//
// membership[i][j] must be 1 iff container i travels over route j.
//
// Errors (all under ErrInvalidInput):
//   - ErrNegativeSize for n < 0 or m < 0,
//   - ErrCapacity for capValue <= 0,
//   - ErrLengthMismatch, ErrNegativeCost, ErrNonBinary for malformed arrays,
//   - ErrCapacityTooLarge when capValue needs more than MaxSlackBits bits,
//   - ErrCoefficientOverflow when costs and capacity are so large that a
//     matrix coefficient or Offset would not fit in int64.
//
// K is derived from capValue even when m == 0, where it sizes nothing.
func NewInstance(n, m, capValue int, costBarge, costTruck []int, membership [][]int) (*Instance, error) {
	if err := validateSizes(n, m); err != nil {
		return nil, err
	}
	if capValue <= 0 {
		return nil, invalidf(ErrCapacity, "capacity %d", capValue)
	}
	capacity := make([]int, m)
	for j := range capacity {
		capacity[j] = capValue
	}

	return build(n, m, capValue, costBarge, costTruck, capacity, membership)
}

// NewInstanceWithCapacities builds an instance whose routes may differ in
// capacity. N is len(costBarge) and M is len(capacities).
//
// Individual capacities may be zero (a closed route), but at least one must
// be positive whenever there are routes; K follows the largest. With no
// routes K is 1.
func NewInstanceWithCapacities(costBarge, costTruck, capacities []int, membership [][]int) (*Instance, error) {
	n, m := len(costBarge), len(capacities)
	maxCap, err := validateCapacities(capacities)
	if err != nil {
		return nil, err
	}
	if m == 0 {
		maxCap = 1
	}

	return build(n, m, maxCap, costBarge, costTruck, capacities, membership)
}

// build validates the arrays, derives K and P, checks the encoding fits
// int64, and deep-copies everything.
func build(n, m, maxCap int, costBarge, costTruck, capacity []int, membership [][]int) (*Instance, error) {
	if err := validateCosts(n, costBarge, costTruck); err != nil {
		return nil, err
	}
	if err := validateMembership(n, m, membership); err != nil {
		return nil, err
	}
	k, err := slackBits(maxCap)
	if err != nil {
		return nil, err
	}
	p, err := penaltyWeight(costBarge)
	if err != nil {
		return nil, err
	}
	if err = checkCoefficients(n, m, k, maxCap, p, costBarge, costTruck); err != nil {
		return nil, err
	}

	return &Instance{
		n:          n,
		m:          m,
		k:          k,
		p:          p,
		costBarge:  append([]int(nil), costBarge...),
		costTruck:  append([]int(nil), costTruck...),
		capacity:   append([]int(nil), capacity...),
		membership: cloneFlags(membership),
	}, nil
}
