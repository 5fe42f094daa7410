package trace

// TraceSummary aggregates statistics from a Trace.
type TraceSummary struct {
	Accesses      int
	Faults        int
	Hits          int
	Evictions     int
	HitRatio      float64
	UniquePages   int
	FaultsPerPage map[int]int // page → number of faults on that page
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t Trace) *TraceSummary {
	summary := &TraceSummary{
		FaultsPerPage: make(map[int]int),
	}
	seen := make(map[int]bool)
	for _, r := range t {
		summary.Accesses++
		seen[r.Page] = true
		if r.Fault {
			summary.Faults++
			summary.FaultsPerPage[r.Page]++
		} else {
			summary.Hits++
		}
		if r.Evicted.Occupied {
			summary.Evictions++
		}
	}
	if summary.Accesses > 0 {
		summary.HitRatio = float64(summary.Hits) / float64(summary.Accesses)
	}
	summary.UniquePages = len(seen)
	return summary
}
