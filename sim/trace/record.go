// Package trace provides per-step trace records for page-replacement simulation runs.
// It has no dependencies on sim/ and stores pure data types.
package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Slot is one frame position in a snapshot. An unoccupied slot never
// compares equal to any page, whatever the page's value.
type Slot struct {
	Page     int
	Occupied bool
}

// PageSlot returns an occupied slot holding page.
func PageSlot(page int) Slot {
	return Slot{Page: page, Occupied: true}
}

// EmptySlot returns an unoccupied slot.
func EmptySlot() Slot {
	return Slot{}
}

// String renders the slot as the page number, or "-" when empty.
func (s Slot) String() string {
	if !s.Occupied {
		return "-"
	}
	return strconv.Itoa(s.Page)
}

// MarshalJSON encodes an empty slot as null and an occupied slot as its page.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Occupied {
		return []byte("null"), nil
	}
	return json.Marshal(s.Page)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Slot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = EmptySlot()
		return nil
	}
	var page int
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("slot must be a page number or null: %w", err)
	}
	*s = PageSlot(page)
	return nil
}

// StepRecord captures the outcome of a single access in the reference string.
type StepRecord struct {
	Time    int    `json:"time"`
	Page    int    `json:"page"`
	Frames  []Slot `json:"frames"`  // padded to the frame capacity
	Fault   bool   `json:"fault"`
	Evicted Slot   `json:"evicted"` // victim on an evicting fault, empty otherwise
}

// FormatFrames renders the frame snapshot as "[1 2 -]".
func (r StepRecord) FormatFrames() string {
	parts := make([]string, len(r.Frames))
	for i, s := range r.Frames {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// String renders the record as one line of a run report.
func (r StepRecord) String() string {
	outcome := "hit"
	if r.Fault {
		outcome = "fault"
	}
	line := fmt.Sprintf("t=%d page=%d frames=%s %s", r.Time, r.Page, r.FormatFrames(), outcome)
	if r.Evicted.Occupied {
		line += fmt.Sprintf(" (evicted %d)", r.Evicted.Page)
	}
	return line
}
