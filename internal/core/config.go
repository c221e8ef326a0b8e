package core

// RuntimeConfig contains configuration passed to a session at initialization.
// The session uses it to size the play area and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame clock ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// Viewport is the play area in world units (pixels).
type Viewport struct {
	Width  float64
	Height float64
}
