package runner

import (
	"time"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Player holds the runner's kinematic state.
// Horizontal motion is integrated from intents; vertical motion is a
// scripted arc driven by the session clock, not free fall.
type Player struct {
	X        float64 // Left edge of the hitbox
	VX       float64 // Horizontal velocity, px/s
	Lift     float64 // Height above the ground line
	Airborne bool

	MinX, MaxX float64
	GroundY    float64 // Y of the ground line; the grounded hitbox bottom

	jumpStart time.Duration
	cfg       config.PlayerConfig
	jump      config.JumpConfig
}

// NewPlayer creates a grounded player positioned for the given viewport.
func NewPlayer(cfg config.RunnerConfig, vp core.Viewport) *Player {
	p := &Player{
		cfg:  cfg.Player,
		jump: cfg.Jump,
	}
	p.Reposition(vp)
	return p
}

// Reposition puts the player back at its start position, grounded and still.
func (p *Player) Reposition(vp core.Viewport) {
	p.SetBounds(vp)
	p.X = core.ClampF(p.cfg.StartX, p.MinX, p.MaxX)
	p.VX = 0
	p.Lift = 0
	p.Airborne = false
	p.jumpStart = 0
}

// SetBounds derives the horizontal range and ground line from the viewport.
func (p *Player) SetBounds(vp core.Viewport) {
	p.MinX = 0
	p.MaxX = vp.Width - p.cfg.Width
	if p.MaxX < p.MinX {
		p.MaxX = p.MinX
	}
	p.GroundY = vp.Height - p.cfg.GroundOffset
	p.X = core.ClampF(p.X, p.MinX, p.MaxX)
}

// Integrate advances horizontal velocity and position by dt seconds.
// Holding one direction accelerates toward max speed in that direction;
// releasing, or holding both, applies friction toward rest.
func (p *Player) Integrate(in core.Intents, dt float64) {
	if dir := in.Direction(); dir != 0 {
		p.VX = approach(p.VX, dir*p.cfg.MaxSpeed, p.cfg.Acceleration*dt)
	} else {
		p.VX = approach(p.VX, 0, p.cfg.Friction*dt)
	}

	p.X += p.VX * dt
	if p.X <= p.MinX {
		p.X = p.MinX
		if p.VX < 0 {
			p.VX = 0
		}
	}
	if p.X >= p.MaxX {
		p.X = p.MaxX
		if p.VX > 0 {
			p.VX = 0
		}
	}
}

// StartJump begins a jump arc at the given clock time.
// It refuses while a previous arc is still running.
func (p *Player) StartJump(now time.Duration) bool {
	if p.Airborne {
		return false
	}
	p.Airborne = true
	p.jumpStart = now
	p.Lift = 0
	return true
}

// UpdateArc recomputes the lift for the current point of the arc.
func (p *Player) UpdateArc(now time.Duration) {
	if !p.Airborne {
		p.Lift = 0
		return
	}
	phase := float64(now-p.jumpStart) / float64(p.JumpDuration())
	phase = core.ClampF(phase, 0, 1)
	p.Lift = p.jump.Height * 4 * phase * (1 - phase)
}

// Land ends the current arc.
func (p *Player) Land() {
	p.Airborne = false
	p.Lift = 0
}

// JumpDuration returns the total time of one arc.
func (p *Player) JumpDuration() time.Duration {
	return config.Millis(p.jump.DurationMs)
}

// Box returns the player's hitbox in world coordinates.
func (p *Player) Box() core.Box {
	top := p.GroundY - p.cfg.Height - p.Lift
	return core.NewBox(p.X, top, p.cfg.Width, p.cfg.Height)
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}
