// SPDX-License-Identifier: MIT
// Package assignment: sentinel error set.
//
// Every configuration failure is reported as ErrInvalidInput joined with a
// precise cause, so both errors.Is(err, ErrInvalidInput) and
// errors.Is(err, ErrNonBinary) hold for a bad membership flag. Nothing here is
// retryable: encoder and decoder are pure functions and any error is a caller
// bug.

package assignment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella class of every configuration error below.
	ErrInvalidInput = errors.New("assignment: invalid input")

	// ErrNegativeSize indicates a negative container or route count.
	ErrNegativeSize = errors.New("assignment: negative container or route count")

	// ErrLengthMismatch indicates that a cost, capacity or membership array
	// does not match N or M.
	ErrLengthMismatch = errors.New("assignment: array length does not match N/M")

	// ErrNegativeCost indicates a negative transport cost.
	ErrNegativeCost = errors.New("assignment: negative cost")

	// ErrCostRange indicates a random cost band that is not [min, max) with
	// 0 <= min < max.
	ErrCostRange = errors.New("assignment: invalid cost range")

	// ErrCoefficientOverflow indicates costs and capacities so large that a
	// QUBO coefficient or the energy offset would not fit in int64.
	ErrCoefficientOverflow = errors.New("assignment: qubo coefficient overflows int64")

	// ErrNonBinary indicates a membership flag or assignment bit outside {0,1}.
	ErrNonBinary = errors.New("assignment: value is not binary")

	// ErrCapacity indicates a negative capacity, or capacities that are all
	// zero, which leaves the slack width undefined.
	ErrCapacity = errors.New("assignment: capacity must be positive")

	// ErrCapacityTooLarge indicates a capacity needing more than MaxSlackBits bits.
	ErrCapacityTooLarge = errors.New("assignment: capacity exceeds slack bit limit")

	// ErrNilInstance indicates that a nil *Instance was passed.
	ErrNilInstance = errors.New("assignment: nil instance")

	// ErrAssignmentLength indicates an assignment vector or sample that does
	// not cover exactly the variables 0..NumVars-1.
	ErrAssignmentLength = errors.New("assignment: assignment does not cover all variables")

	// ErrInvalidPartition indicates a partition that is not a disjoint cover of 0..N-1.
	ErrInvalidPartition = errors.New("assignment: partition is not a cover of all containers")

	// ErrOutOfRange indicates a container, route or slack bit index outside bounds.
	ErrOutOfRange = errors.New("assignment: index out of range")
)

// invalidf joins ErrInvalidInput with a precise cause and a formatted context.
func invalidf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, cause, fmt.Sprintf(format, args...))
}
