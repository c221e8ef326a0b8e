package runner

import (
	"time"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// Kind distinguishes hazard types.
type Kind int

const (
	KindRock  Kind = iota // Ground hazard, must be jumped
	KindFlyer             // Aerial single-pass hazard, must not be jumped into
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindFlyer:
		return "flyer"
	default:
		return "unknown"
	}
}

// Hazard is an obstacle travelling from the spawn edge toward the trailing edge.
type Hazard struct {
	ID        uint64
	Kind      Kind
	Box       core.Box
	Speed     float64 // px/s toward the trailing (left) edge
	Passed    bool    // Set once the player has cleared it; never reset
	SpawnedAt time.Duration

	prev    core.Box // Box before the last Advance
	removed bool
}

// HazardField owns the active hazards of one run.
type HazardField struct {
	hazards []*Hazard
	nextID  uint64
}

// NewHazardField creates an empty field.
func NewHazardField() *HazardField {
	return &HazardField{
		hazards: make([]*Hazard, 0, 8),
	}
}

// Add places a new hazard on the field.
func (f *HazardField) Add(kind Kind, box core.Box, speed float64, at time.Duration) *Hazard {
	f.nextID++
	h := &Hazard{
		ID:        f.nextID,
		Kind:      kind,
		Box:       box,
		Speed:     speed,
		SpawnedAt: at,
		prev:      box,
	}
	f.hazards = append(f.hazards, h)
	return h
}

// Advance moves every hazard toward the trailing edge by dt seconds.
func (f *HazardField) Advance(dt float64) {
	for _, h := range f.hazards {
		h.prev = h.Box
		h.Box = h.Box.Translate(-h.Speed*dt, 0)
	}
}

// Sweep removes hazards that are fully past the trailing edge.
// It returns how many were removed.
func (f *HazardField) Sweep() int {
	kept := f.hazards[:0]
	removed := 0
	for _, h := range f.hazards {
		if h.Box.Right <= 0 {
			h.removed = true
			removed++
			continue
		}
		kept = append(kept, h)
	}
	// Drop references held by the tail of the backing array
	for i := len(kept); i < len(f.hazards); i++ {
		f.hazards[i] = nil
	}
	f.hazards = kept
	return removed
}

// Swept returns the area the hazard covered during the last Advance, seen
// from an observer that moved dx in the same tick.
func (h *Hazard) Swept(dx float64) core.Box {
	return h.Box.Union(h.prev.Translate(dx, 0))
}

// Shift moves every hazard vertically, used when the ground line moves.
func (f *HazardField) Shift(dy float64) {
	for _, h := range f.hazards {
		h.Box = h.Box.Translate(0, dy)
		h.prev = h.prev.Translate(0, dy)
	}
}

// Active returns the hazards currently on the field.
// The slice is owned by the field and only valid until the next mutation.
func (f *HazardField) Active() []*Hazard {
	return f.hazards
}

// ActiveFlyer returns the flyer on the field, or nil.
func (f *HazardField) ActiveFlyer() *Hazard {
	for _, h := range f.hazards {
		if h.Kind == KindFlyer && !h.removed {
			return h
		}
	}
	return nil
}

// Count returns the number of active hazards of the given kind.
func (f *HazardField) Count(kind Kind) int {
	n := 0
	for _, h := range f.hazards {
		if h.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of active hazards.
func (f *HazardField) Len() int {
	return len(f.hazards)
}

// Clear removes every hazard.
func (f *HazardField) Clear() {
	for i, h := range f.hazards {
		h.removed = true
		f.hazards[i] = nil
	}
	f.hazards = f.hazards[:0]
}
