// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies so
// simulation code stays pure and testable.
package core

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in arena pixels.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// CenteredBox returns a box of size w x h centered on (cx, cy).
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// Width returns the box width.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the box height.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Overlaps reports whether two boxes share any point.
// Bounds are inclusive: boxes that only touch along an edge overlap.
func (b Box) Overlaps(other Box) bool {
	if b.MinX > other.MaxX || other.MinX > b.MaxX {
		return false
	}
	if b.MinY > other.MaxY || other.MinY > b.MaxY {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
