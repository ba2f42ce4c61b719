// Package mapgen synthesizes world maps. Generation is deterministic for a
// given seeded RNG; the grid is a horizontal cylinder so growth passes wrap
// in x and stop at the top and bottom edges.
package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// Scenario selects a map layout.
type Scenario string

const (
	ScenarioRandom Scenario = "random"
	ScenarioEarth  Scenario = "earth"
)

// Generator builds world maps from a seeded RNG.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a width x height map for the scenario. Width and height
// must be positive.
func (g *Generator) Generate(width, height int, scenario Scenario) (*world.Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mapgen: invalid dimensions %dx%d", width, height)
	}
	var m *world.Map
	switch scenario {
	case ScenarioEarth:
		m = g.generateEarth(width, height)
	case ScenarioRandom, "":
		m = g.generateRandom(width, height)
	default:
		return nil, fmt.Errorf("mapgen: unknown scenario %q", scenario)
	}
	g.assignResources(m)
	return m, nil
}

// assignResources samples each terrain's resource table, tile by tile.
// Resources are tried in table order and the first success wins, so at most
// one resource lands per tile.
func (g *Generator) assignResources(m *world.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := &m.Tiles[y][x]
			for _, rc := range rules.TerrainInfo(tile.Terrain).Resources {
				if g.rng.Float64() < rc.Probability {
					tile.Resource = rc.Resource
					break
				}
			}
		}
	}
}
