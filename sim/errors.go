package sim

import "errors"

// Error kinds returned by the simulation engine. Callers test for them with errors.Is.
var (
	// ErrInvalidInput is returned before any step runs: empty reference string,
	// non-positive frame capacity, non-numeric page tokens or a nil policy.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacityExceeded is returned by FrameSet.Insert on a full frame set.
	ErrCapacityExceeded = errors.New("frame set capacity exceeded")

	// ErrPageNotResident is returned by FrameSet.Evict for a page that is not resident.
	ErrPageNotResident = errors.New("page not resident")

	// ErrInvariantViolation aborts a run whose policy broke the eviction contract.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrCustomPolicy wraps every failure raised inside a user-supplied policy.
	ErrCustomPolicy = errors.New("custom policy failure")
)
