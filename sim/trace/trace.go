package trace

// TraceLevel controls how much of a run is reported.
type TraceLevel string

const (
	// TraceLevelNone reports totals only.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps reports every step of the run.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Trace is the ordered sequence of step records of one simulation run.
type Trace []StepRecord

// Faults counts the records that are faults.
func (t Trace) Faults() int {
	n := 0
	for _, r := range t {
		if r.Fault {
			n++
		}
	}
	return n
}

// Pages returns the reference string the trace was produced from.
func (t Trace) Pages() []int {
	pages := make([]int, len(t))
	for i, r := range t {
		pages[i] = r.Page
	}
	return pages
}
