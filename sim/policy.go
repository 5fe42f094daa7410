package sim

import (
	"fmt"
	"slices"
)

// Built-in policy names, in comparison order.
const (
	PolicyFIFO    = "fifo"
	PolicyLRU     = "lru"
	PolicyOptimal = "optimal"
	PolicyCustom  = "custom"
)

// RecencyIndex maps a page to the time of its most recent access.
type RecencyIndex map[int]int

// EvictionContext carries everything a policy may consult when choosing a victim.
// Policies must treat every field as read-only.
type EvictionContext struct {
	Frames   Frames       // full frame set
	Recency  RecencyIndex // most recent access time per page seen so far
	Future   []int        // reference string strictly after Time
	Incoming int          // page that faulted
	Time     int          // index of the faulting access
}

// Policy chooses the page to evict on a fault with a full frame set.
// The returned page must be resident in ec.Frames.
type Policy interface {
	Name() string
	FindVictim(ec EvictionContext) (int, error)
}

// FIFOPolicy evicts the page that has been resident longest.
type FIFOPolicy struct{}

func (p *FIFOPolicy) Name() string { return PolicyFIFO }

// FindVictim returns the head of the insertion-ordered frame set.
func (p *FIFOPolicy) FindVictim(ec EvictionContext) (int, error) {
	pages := ec.Frames.Pages()
	if len(pages) == 0 {
		return 0, errNoCandidates
	}
	return pages[0], nil
}

// LRUPolicy evicts the page whose most recent access is oldest.
type LRUPolicy struct{}

func (p *LRUPolicy) Name() string { return PolicyLRU }

// FindVictim returns the resident page with the smallest recency value.
// Ties go to the page inserted first.
func (p *LRUPolicy) FindVictim(ec EvictionContext) (int, error) {
	pages := ec.Frames.Pages()
	if len(pages) == 0 {
		return 0, errNoCandidates
	}
	victim := pages[0]
	oldest := ec.Recency[victim]
	for _, page := range pages[1:] {
		if t := ec.Recency[page]; t < oldest {
			victim, oldest = page, t
		}
	}
	return victim, nil
}

// OptimalPolicy evicts the page whose next use lies farthest in the future.
// It needs the whole reference string up front, so it is a benchmark rather
// than a realizable policy.
type OptimalPolicy struct{}

func (p *OptimalPolicy) Name() string { return PolicyOptimal }

// FindVictim scans the remaining references for each resident page. A page
// never referenced again is infinitely far away. Ties go to the page inserted first.
func (p *OptimalPolicy) FindVictim(ec EvictionContext) (int, error) {
	pages := ec.Frames.Pages()
	if len(pages) == 0 {
		return 0, errNoCandidates
	}
	victim, farthest := pages[0], NextUse(ec.Future, pages[0])
	for _, page := range pages[1:] {
		if next := NextUse(ec.Future, page); next > farthest {
			victim, farthest = page, next
		}
	}
	return victim, nil
}

// NextUse returns the 1-based distance to the first occurrence of page in
// future, or len(future)+1 when page does not occur again.
func NextUse(future []int, page int) int {
	if i := slices.Index(future, page); i >= 0 {
		return i + 1
	}
	return len(future) + 1
}

var errNoCandidates = fmt.Errorf("%w: no resident pages to evict", ErrInvariantViolation)

// BuiltinPolicyNames returns the names of the built-in policies in comparison order.
func BuiltinPolicyNames() []string {
	return []string{PolicyFIFO, PolicyLRU, PolicyOptimal}
}

// IsValidPolicyName reports whether name is a built-in policy.
func IsValidPolicyName(name string) bool {
	return slices.Contains(BuiltinPolicyNames(), name)
}

// NewPolicy creates a built-in policy by name.
// Valid names: "fifo", "lru", "optimal". Custom policies are built by sim/custom.
func NewPolicy(name string) Policy {
	switch name {
	case PolicyFIFO:
		return &FIFOPolicy{}
	case PolicyLRU:
		return &LRUPolicy{}
	case PolicyOptimal:
		return &OptimalPolicy{}
	default:
		panic(fmt.Sprintf("unknown policy %q; valid policies: [fifo, lru, optimal]", name))
	}
}
