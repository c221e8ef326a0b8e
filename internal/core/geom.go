// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box in world units (pixels).
// Y grows downward, so Top < Bottom for a non-empty box.
type Box struct {
	Left, Right float64
	Top, Bottom float64
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Left: x, Right: x + w, Top: y, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Left:   b.Left + dx,
		Right:  b.Right + dx,
		Top:    b.Top + dy,
		Bottom: b.Bottom + dy,
	}
}

// Grow returns the box expanded by pad on every side.
// A negative pad shrinks the box.
func (b Box) Grow(pad float64) Box {
	return Box{
		Left:   b.Left - pad,
		Right:  b.Right + pad,
		Top:    b.Top - pad,
		Bottom: b.Bottom + pad,
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Left:   min(b.Left, o.Left),
		Right:  max(b.Right, o.Right),
		Top:    min(b.Top, o.Top),
		Bottom: max(b.Bottom, o.Bottom),
	}
}

// Overlaps reports whether two boxes intersect after growing each by pad.
// Boxes that only touch along an edge do not overlap. Passing a negative pad
// insets both boxes, which makes near misses forgiving.
func Overlaps(a, b Box, pad float64) bool {
	a = a.Grow(pad)
	b = b.Grow(pad)

	// No overlap if one box is completely to the left, right, above, or below
	if a.Right <= b.Left || b.Right <= a.Left {
		return false
	}
	if a.Bottom <= b.Top || b.Bottom <= a.Top {
		return false
	}
	return true
}

// Rect is an integer rectangle in terminal cells, used by the renderer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
