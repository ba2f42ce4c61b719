package world

import (
	"github.com/opd-ai/go-empire/pkg/rules"
)

// ImprovementType identifies a tile improvement built by settlers.
type ImprovementType int

const (
	Road ImprovementType = iota
	Irrigation
	Mine
	Fortress
)

func (t ImprovementType) String() string {
	switch t {
	case Road:
		return "Road"
	case Irrigation:
		return "Irrigation"
	case Mine:
		return "Mine"
	case Fortress:
		return "Fortress"
	}
	return "Unknown"
}

// Tile is one cell of the world grid. Terrain is fixed after generation;
// Resource is assigned once by the generator; Improvements grow append-only,
// at most one of each type.
type Tile struct {
	Position     Position
	Terrain      rules.Terrain
	Resource     rules.Resource
	Improvements []ImprovementType
}

// HasImprovement reports whether the tile already carries an improvement of
// the given type.
func (t *Tile) HasImprovement(imp ImprovementType) bool {
	for _, existing := range t.Improvements {
		if existing == imp {
			return true
		}
	}
	return false
}

// AddImprovement appends the improvement if not already present and reports
// whether the tile changed.
func (t *Tile) AddImprovement(imp ImprovementType) bool {
	if t.HasImprovement(imp) {
		return false
	}
	t.Improvements = append(t.Improvements, imp)
	return true
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() Tile {
	dup := *t
	if t.Improvements != nil {
		dup.Improvements = append([]ImprovementType(nil), t.Improvements...)
	}
	return dup
}
