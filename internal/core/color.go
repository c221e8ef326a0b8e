package core

// Color represents a foreground color for a screen cell.
// Renderers map each value to an ANSI 256-color code.
type Color uint8

// Colors used by the game scene.
const (
	ColorDefault      Color = iota
	ColorRed                // Game over banner
	ColorGreen              // Player while airborne
	ColorWhite              // HUD text
	ColorBrightGreen        // Player
	ColorBrightYellow       // Score highlight
	ColorBrightCyan         // Titles
	ColorMagenta            // Flyer
	ColorOrange             // Rocks
	ColorGray               // Ground and cleared hazards
)
