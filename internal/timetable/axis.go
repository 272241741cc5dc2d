package timetable

import (
	"fmt"
	"time"
)

const slotLayout = "15:04:05"

// Default slot axis bounds. The axis is configuration, not data: it defines
// the column space of every matrix regardless of which times the input uses.
const (
	DefaultAxisStart = "08:05:00"
	DefaultAxisEnd   = "17:35:00"
	DefaultAxisStep  = 30 * time.Minute
)

// Axis is the fixed, ordered sequence of time-of-day slot boundaries that
// forms the column space of every day matrix.
type Axis struct {
	slots []string
	index map[string]int
}

// NewAxis builds an axis from an inclusive start/end bound (HH:MM:SS) and a
// positive step.
func NewAxis(start, end string, step time.Duration) (Axis, error) {
	from, err := time.Parse(slotLayout, start)
	if err != nil {
		return Axis{}, fmt.Errorf("axis start %q: %w", start, err)
	}
	to, err := time.Parse(slotLayout, end)
	if err != nil {
		return Axis{}, fmt.Errorf("axis end %q: %w", end, err)
	}
	if step <= 0 {
		return Axis{}, fmt.Errorf("axis step must be positive, got %s", step)
	}
	if to.Before(from) {
		return Axis{}, fmt.Errorf("axis end %s before start %s", end, start)
	}

	a := Axis{index: make(map[string]int)}
	for t := from; !t.After(to); t = t.Add(step) {
		a.index[t.Format(slotLayout)] = len(a.slots)
		a.slots = append(a.slots, t.Format(slotLayout))
	}
	return a, nil
}

// DefaultAxis returns the standard 08:05–17:35 half-hour axis.
func DefaultAxis() Axis {
	a, err := NewAxis(DefaultAxisStart, DefaultAxisEnd, DefaultAxisStep)
	if err != nil {
		panic(err) // constants above are valid
	}
	return a
}

// Slots returns the ordered slot labels. Callers must not modify the
// returned slice.
func (a Axis) Slots() []string { return a.slots }

// Len returns the number of slots.
func (a Axis) Len() int { return len(a.slots) }

// At returns the slot label at position i.
func (a Axis) At(i int) string { return a.slots[i] }

// Index returns the position of slot within the axis, or false if slot is
// not an axis boundary.
func (a Axis) Index(slot string) (int, bool) {
	i, ok := a.index[slot]
	return i, ok
}
