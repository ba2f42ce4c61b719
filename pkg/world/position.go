// Package world holds the spatial model of the game: grid positions with
// cylindrical wrapping, tiles, and the world map itself.
package world

// Position is an integer grid coordinate. The world is a horizontal cylinder:
// x wraps around the map width, y is clamped to the map height.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WrapX normalizes an x coordinate onto [0, width).
func WrapX(x, width int) int {
	return ((x % width) + width) % width
}

// ClampY bounds a y coordinate to [0, height).
func ClampY(y, height int) int {
	if y < 0 {
		return 0
	}
	if y >= height {
		return height - 1
	}
	return y
}

// Normalize returns the position mapped onto the wrapped/clamped grid.
func (p Position) Normalize(width, height int) Position {
	return Position{X: WrapX(p.X, width), Y: ClampY(p.Y, height)}
}

// WrappedDeltaX returns the shorter horizontal distance between two x
// coordinates, accounting for wraparound.
func WrappedDeltaX(x1, x2, width int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	if wrapped := width - dx; wrapped < dx {
		return wrapped
	}
	return dx
}

// Distance returns the wrapped Manhattan distance between two positions.
func Distance(a, b Position, width int) int {
	dx := WrappedDeltaX(a.X, b.X, width)
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent reports whether b is within one step of a in both axes
// (Chebyshev distance <= 1 with wrapped x), excluding a == b.
func Adjacent(a, b Position, width int) bool {
	if a == b {
		return false
	}
	dx := WrappedDeltaX(a.X, b.X, width)
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1
}
