package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

// printResult writes the run report: the policy, one line per step when
// level is steps, and the totals.
func printResult(w io.Writer, res *sim.SimulationResult, level trace.TraceLevel) {
	fmt.Fprintf(w, "Algorithm: %s\n", strings.ToUpper(res.Policy))
	fmt.Fprintf(w, "Frames: %d\n", res.Frames)
	if level == trace.TraceLevelSteps {
		fmt.Fprintln(w)
		for _, rec := range res.Trace {
			fmt.Fprintln(w, rec)
		}
	}
	summary := trace.Summarize(res.Trace)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Page Faults: %d\n", res.Faults)
	fmt.Fprintf(w, "Hits: %d / %d (%.2f%%)\n", summary.Hits, summary.Accesses, 100*summary.HitRatio)
	fmt.Fprintf(w, "Evictions: %d\n", summary.Evictions)
}

// printComparison writes the side-by-side fault counts of one reference string.
func printComparison(w io.Writer, refs []int, nFrames int, result sim.ComparisonResult) {
	fmt.Fprintf(w, "Reference: %s\n", sim.FormatReferenceString(refs))
	fmt.Fprintf(w, "Frames: %d\n\n", nFrames)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POLICY\tFAULTS\tHITS\tFAULT RATE")
	for _, name := range sim.BuiltinPolicyNames() {
		faults := result[name]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f%%\n", name, faults, len(refs)-faults, 100*float64(faults)/float64(len(refs)))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nBest: %s\n", strings.Join(result.Best(), ", "))
}

// batchReport is the JSON form of a batch run.
type batchReport struct {
	Frames  int                        `json:"frames"`
	Entries []sim.BatchEntry           `json:"entries"`
	Skipped int                        `json:"skipped"`
	Summary map[string]sim.PolicyStats `json:"summary"`
}

// printBatch writes one row per compared reference string followed by per-policy statistics.
func printBatch(w io.Writer, names []string, nFrames int, entries []sim.BatchEntry, skipped int) {
	fmt.Fprintf(w, "Frames: %d, compared: %d, skipped: %d\n\n", nFrames, len(entries), skipped)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tACCESSES\tFIFO\tLRU\tOPTIMAL\tBEST")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n", names[e.Index], len(e.Reference),
			e.Result[sim.PolicyFIFO], e.Result[sim.PolicyLRU], e.Result[sim.PolicyOptimal],
			strings.Join(e.Result.Best(), ","))
	}
	_ = tw.Flush()

	summary := sim.SummarizeBatch(entries)
	if len(summary) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POLICY\tMEAN FAULTS\tSTDDEV\tMEAN FAULT RATE\tTIMES BEST")
	for _, name := range sim.BuiltinPolicyNames() {
		ps, ok := summary[name]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f%%\t%d\n", name, ps.MeanFaults, ps.StdDevFaults, 100*ps.MeanFaultRate, ps.TimesBest)
	}
	_ = tw.Flush()
}

// writeBatchJSON writes the batch as indented JSON.
func writeBatchJSON(w io.Writer, nFrames int, entries []sim.BatchEntry, skipped int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(batchReport{
		Frames:  nFrames,
		Entries: entries,
		Skipped: skipped,
		Summary: sim.SummarizeBatch(entries),
	})
}
