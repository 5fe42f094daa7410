package sim

import (
	"fmt"
	"slices"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

// Frames is the read-only view of a frame set handed to policies.
type Frames interface {
	// Contains reports whether page is resident.
	Contains(page int) bool
	// Len returns the number of resident pages.
	Len() int
	// Cap returns the frame capacity.
	Cap() int
	// Pages returns the resident pages in insertion order. The slice is a copy.
	Pages() []int
	// Index returns the insertion-order position of page, or -1 if not resident.
	Index(page int) int
}

// FrameSet is a fixed-capacity, duplicate-free sequence of resident pages
// kept in insertion order.
type FrameSet struct {
	capacity int
	pages    []int
}

// NewFrameSet creates an empty FrameSet. Panics if capacity < 1.
func NewFrameSet(capacity int) *FrameSet {
	if capacity < 1 {
		panic(fmt.Sprintf("FrameSet: capacity must be >= 1, got %d", capacity))
	}
	return &FrameSet{
		capacity: capacity,
		pages:    make([]int, 0, capacity),
	}
}

func (fs *FrameSet) Contains(page int) bool {
	return slices.Contains(fs.pages, page)
}

func (fs *FrameSet) Index(page int) int {
	return slices.Index(fs.pages, page)
}

func (fs *FrameSet) Len() int { return len(fs.pages) }

func (fs *FrameSet) Cap() int { return fs.capacity }

// IsFull reports whether every frame holds a page.
func (fs *FrameSet) IsFull() bool {
	return len(fs.pages) == fs.capacity
}

func (fs *FrameSet) Pages() []int {
	return slices.Clone(fs.pages)
}

// Insert appends page to the end of the sequence. The caller must evict first
// when the set is full.
func (fs *FrameSet) Insert(page int) error {
	if fs.IsFull() {
		return fmt.Errorf("%w: inserting page %d into %d frames", ErrCapacityExceeded, page, fs.capacity)
	}
	if fs.Contains(page) {
		return fmt.Errorf("%w: page %d already resident", ErrInvariantViolation, page)
	}
	fs.pages = append(fs.pages, page)
	return nil
}

// Evict removes page from the sequence, keeping the order of the others.
func (fs *FrameSet) Evict(page int) error {
	i := fs.Index(page)
	if i < 0 {
		return fmt.Errorf("%w: page %d", ErrPageNotResident, page)
	}
	fs.pages = slices.Delete(fs.pages, i, i+1)
	return nil
}

// Snapshot returns the resident pages in sequence order, padded with empty
// slots to the frame capacity.
func (fs *FrameSet) Snapshot() []trace.Slot {
	slots := make([]trace.Slot, fs.capacity)
	for i, p := range fs.pages {
		slots[i] = trace.PageSlot(p)
	}
	return slots
}
