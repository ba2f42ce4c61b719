package world

import (
	"github.com/opd-ai/go-empire/pkg/rules"
)

// DefaultWidth and DefaultHeight are the dimensions of the standard map.
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Map is the 2D tile grid, indexed [y][x].
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewMap allocates a grid of the given dimensions with every tile set to the
// base terrain. Dimensions must be positive.
func NewMap(width, height int, base rules.Terrain) *Map {
	if width <= 0 || height <= 0 {
		return nil
	}
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = Tile{Position: Position{X: x, Y: y}, Terrain: base}
		}
		tiles[y] = row
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// TileAt returns the tile at the wrapped/clamped position.
func (m *Map) TileAt(pos Position) *Tile {
	p := pos.Normalize(m.Width, m.Height)
	return &m.Tiles[p.Y][p.X]
}

// InBoundsY reports whether y lies inside the grid without clamping. There is
// no x counterpart because x always wraps.
func (m *Map) InBoundsY(y int) bool {
	return y >= 0 && y < m.Height
}

// Neighbors returns the tiles in the 8-neighborhood of pos. Neighbors across
// the top or bottom edge do not exist; across the left/right edge they wrap.
func (m *Map) Neighbors(pos Position) []*Tile {
	neighbors := make([]*Tile, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny := pos.Y + dy
			if !m.InBoundsY(ny) {
				continue
			}
			neighbors = append(neighbors, &m.Tiles[ny][WrapX(pos.X+dx, m.Width)])
		}
	}
	return neighbors
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	tiles := make([][]Tile, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]Tile, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = m.Tiles[y][x].Clone()
		}
		tiles[y] = row
	}
	return &Map{Width: m.Width, Height: m.Height, Tiles: tiles}
}
