package runner

import (
	"time"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// PlayerPose is the player as the renderer sees it.
type PlayerPose struct {
	Box      core.Box
	Airborne bool
	Facing   float64 // -1 left, +1 right, 0 still
}

// HazardPose is one hazard as the renderer sees it.
type HazardPose struct {
	ID     uint64
	Kind   Kind
	Box    core.Box
	Passed bool
}

// Snapshot is the read-only per-tick view handed to renderers.
// It shares no memory with the session.
type Snapshot struct {
	State     State
	Paused    bool
	Live      bool          // False during the start delay
	Countdown time.Duration // Remaining start delay
	Pulse     bool          // A point was just scored

	Viewport core.Viewport
	GroundY  float64
	Player   PlayerPose
	Hazards  []HazardPose

	Score   int
	Best    int
	Level   int
	Gap     int
	Verdict Verdict
	Clock   time.Duration
}
