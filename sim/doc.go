// Package sim provides the page-replacement simulation engine.
//
// # Reading Guide
//
// Start with these files:
//   - frameset.go: FrameSet, the capacity-bounded, insertion-ordered set of resident pages
//   - policy.go: the Policy interface and the FIFO, LRU and Optimal policies
//   - simulator.go: Simulate, which drives a reference string through a policy
//   - compare.go: Compare and BatchCompare over the built-in policies
//
// # Architecture
//
// The sim package defines the engine and the built-in policies; related code
// lives in sub-packages:
//   - sim/trace/: per-step trace records, summaries and CSV export
//   - sim/custom/: sandboxed score-expression policies supplied at runtime
//   - sim/workload/: batch workload files and reference-string generation
//   - sim/record/: saved result records and the SQLite batch recorder
//
// Every Simulate call owns its FrameSet and RecencyIndex; nothing is shared
// between calls, so repeated runs with the same inputs produce identical traces.
package sim
