// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

// SimulationResult is the outcome of driving one reference string through one policy.
type SimulationResult struct {
	Policy string      `json:"policy"`
	Frames int         `json:"frames"`
	Trace  trace.Trace `json:"trace"`
	Faults int         `json:"faults"`
}

// Hits returns the number of accesses that found their page resident.
func (r *SimulationResult) Hits() int {
	return len(r.Trace) - r.Faults
}

// FaultRate returns faults per access.
func (r *SimulationResult) FaultRate() float64 {
	if len(r.Trace) == 0 {
		return 0
	}
	return float64(r.Faults) / float64(len(r.Trace))
}

// Simulate runs refs through policy p with the given number of frames.
// It is a pure function of its inputs: the frame set and recency index live
// only for the duration of the call. Input errors are reported before any
// step runs; a policy that breaks the eviction contract aborts the run and
// no partial result is returned.
func Simulate(refs []int, frames int, p Policy) (*SimulationResult, error) {
	if frames < 1 {
		return nil, fmt.Errorf("%w: frame capacity must be >= 1, got %d", ErrInvalidInput, frames)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: reference string is empty", ErrInvalidInput)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: policy is nil", ErrInvalidInput)
	}

	fs := NewFrameSet(frames)
	recency := make(RecencyIndex)
	result := &SimulationResult{
		Policy: p.Name(),
		Frames: frames,
		Trace:  make(trace.Trace, 0, len(refs)),
	}

	for i, page := range refs {
		fault := !fs.Contains(page)
		evicted := trace.EmptySlot()
		if fault {
			if fs.IsFull() {
				victim, err := evict(fs, recency, refs, i, p)
				if err != nil {
					return nil, err
				}
				evicted = trace.PageSlot(victim)
			}
			if err := fs.Insert(page); err != nil {
				return nil, fmt.Errorf("%w: t=%d: %w", ErrInvariantViolation, i, err)
			}
			result.Faults++
		}
		recency[page] = i

		rec := trace.StepRecord{
			Time:    i,
			Page:    page,
			Frames:  fs.Snapshot(),
			Fault:   fault,
			Evicted: evicted,
		}
		logrus.Tracef("[%s] %s", p.Name(), rec)
		result.Trace = append(result.Trace, rec)
	}

	logrus.Debugf("[%s] %d accesses, %d frames, %d faults", p.Name(), len(refs), frames, result.Faults)
	return result, nil
}

// evict asks the policy for a victim at time i and removes it from fs.
func evict(fs *FrameSet, recency RecencyIndex, refs []int, i int, p Policy) (int, error) {
	ec := EvictionContext{
		Frames:   fs,
		Recency:  recency,
		Future:   refs[i+1:],
		Incoming: refs[i],
		Time:     i,
	}
	victim, err := p.FindVictim(ec)
	if err != nil {
		if errors.Is(err, ErrCustomPolicy) || errors.Is(err, ErrInvariantViolation) {
			return 0, fmt.Errorf("policy %s at t=%d: %w", p.Name(), i, err)
		}
		return 0, fmt.Errorf("%w: policy %s at t=%d: %w", ErrInvariantViolation, p.Name(), i, err)
	}
	if err := fs.Evict(victim); err != nil {
		return 0, fmt.Errorf("%w: policy %s chose victim %d at t=%d: %w", ErrInvariantViolation, p.Name(), victim, i, err)
	}
	return victim, nil
}
