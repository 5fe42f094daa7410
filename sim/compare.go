package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// ComparisonResult maps a built-in policy name to its fault count on one reference string.
type ComparisonResult map[string]int

// Best returns the policies with the fewest faults, in comparison order.
func (c ComparisonResult) Best() []string {
	var best []string
	fewest := -1
	for _, name := range BuiltinPolicyNames() {
		faults, ok := c[name]
		if !ok {
			continue
		}
		switch {
		case fewest < 0 || faults < fewest:
			fewest = faults
			best = []string{name}
		case faults == fewest:
			best = append(best, name)
		}
	}
	return best
}

// Compare runs refs through every built-in policy. Each run is independent;
// custom policies are never included.
func Compare(refs []int, frames int) (ComparisonResult, error) {
	result := make(ComparisonResult, len(BuiltinPolicyNames()))
	for _, name := range BuiltinPolicyNames() {
		res, err := Simulate(refs, frames, NewPolicy(name))
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", name, err)
		}
		result[name] = res.Faults
	}
	return result, nil
}

// BatchEntry is the comparison of one reference string in a batch.
type BatchEntry struct {
	Index     int              `json:"index"` // position in the batch input
	Input     string           `json:"input"`
	Reference []int            `json:"reference"`
	Result    ComparisonResult `json:"result"`
}

// BatchCompare compares every input string independently, preserving input
// order. Non-numeric tokens are dropped; a string left empty, or one whose
// comparison fails, is skipped with a warning. Only an invalid frame capacity
// fails the whole batch.
func BatchCompare(inputs []string, frames int) ([]BatchEntry, error) {
	if frames < 1 {
		return nil, fmt.Errorf("%w: frame capacity must be >= 1, got %d", ErrInvalidInput, frames)
	}
	entries := make([]BatchEntry, 0, len(inputs))
	for i, input := range inputs {
		refs := FilterReferenceString(input)
		if len(refs) == 0 {
			logrus.Warnf("batch: skipping input %d %q: no page numbers", i, input)
			continue
		}
		result, err := Compare(refs, frames)
		if err != nil {
			logrus.Warnf("batch: skipping input %d: %v", i, err)
			continue
		}
		entries = append(entries, BatchEntry{Index: i, Input: input, Reference: refs, Result: result})
	}
	return entries, nil
}

// PolicyStats aggregates one policy's results over a batch.
type PolicyStats struct {
	Runs          int     `json:"runs"`
	MeanFaults    float64 `json:"mean_faults"`
	StdDevFaults  float64 `json:"stddev_faults"`
	MeanFaultRate float64 `json:"mean_fault_rate"`
	TimesBest     int     `json:"times_best"` // entries where the policy had the fewest faults, ties included
}

// SummarizeBatch computes per-policy statistics over the batch entries.
// Safe for nil or empty batches (returns an empty map).
func SummarizeBatch(entries []BatchEntry) map[string]PolicyStats {
	summary := make(map[string]PolicyStats)
	if len(entries) == 0 {
		return summary
	}
	for _, name := range BuiltinPolicyNames() {
		faults := make([]float64, 0, len(entries))
		rates := make([]float64, 0, len(entries))
		best := 0
		for _, e := range entries {
			f, ok := e.Result[name]
			if !ok {
				continue
			}
			faults = append(faults, float64(f))
			rates = append(rates, float64(f)/float64(len(e.Reference)))
			for _, b := range e.Result.Best() {
				if b == name {
					best++
				}
			}
		}
		if len(faults) == 0 {
			continue
		}
		ps := PolicyStats{Runs: len(faults), TimesBest: best}
		ps.MeanFaults, ps.StdDevFaults = meanStdDev(faults)
		ps.MeanFaultRate = stat.Mean(rates, nil)
		summary[name] = ps
	}
	return summary
}

// meanStdDev returns the mean and the sample standard deviation, which is
// zero (not NaN) for a single sample.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) == 1 {
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}
