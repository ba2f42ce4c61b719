package mapgen

import (
	"math"

	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// growthPass is one clustered region-growth step: seed count scales with map
// area, each seed grows an irregular blob, and only tiles whose current
// terrain is in the source set are overwritten. Pass order matters because
// later passes may overwrite earlier ones.
type growthPass struct {
	terrain     rules.Terrain
	seedsPer100 float64 // seeds per 100 tiles of map area
	minSize     int
	maxSize     int
	sources     []rules.Terrain
}

var randomPasses = []growthPass{
	{terrain: rules.Mountains, seedsPer100: 0.5, minSize: 2, maxSize: 5, sources: []rules.Terrain{rules.Grassland, rules.Plains}},
	{terrain: rules.Hills, seedsPer100: 0.7, minSize: 2, maxSize: 4, sources: []rules.Terrain{rules.Grassland, rules.Plains}},
	{terrain: rules.Forest, seedsPer100: 0.9, minSize: 2, maxSize: 5, sources: []rules.Terrain{rules.Grassland, rules.Plains}},
	{terrain: rules.Desert, seedsPer100: 0.4, minSize: 3, maxSize: 6, sources: []rules.Terrain{rules.Grassland, rules.Plains}},
	{terrain: rules.Jungle, seedsPer100: 0.4, minSize: 2, maxSize: 4, sources: []rules.Terrain{rules.Grassland, rules.Plains, rules.Forest}},
	{terrain: rules.Swamp, seedsPer100: 0.3, minSize: 1, maxSize: 3, sources: []rules.Terrain{rules.Grassland, rules.Plains}},
}

func (g *Generator) generateRandom(width, height int) *world.Map {
	m := world.NewMap(width, height, rules.Grassland)

	g.carveOceanBorder(m)
	for _, pass := range randomPasses {
		g.applyGrowthPass(m, pass)
	}
	g.traceRivers(m, width*height/400+2)
	g.smoothCoastlines(m)
	return m
}

// carveOceanBorder turns the outer ring of the map into ocean using a radial
// distance-from-center threshold perturbed by sinusoidal noise, leaving an
// irregular continent blob in the middle.
func (g *Generator) carveOceanBorder(m *world.Map) {
	cx := float64(m.Width) / 2
	cy := float64(m.Height) / 2
	phase := g.rng.Float64() * 2 * math.Pi
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			nx := (float64(x) - cx) / cx
			ny := (float64(y) - cy) / cy
			dist := math.Sqrt(nx*nx + ny*ny)
			angle := math.Atan2(ny, nx)
			wobble := 0.15*math.Sin(3*angle+phase) + 0.08*math.Sin(7*angle-phase)
			if dist+wobble > 0.82 {
				m.Tiles[y][x].Terrain = rules.Ocean
			}
		}
	}
}

// applyGrowthPass drops the pass's seed points and grows a blob around each.
// The blob uses a radius-based probability falloff: a tile at distance d from
// the seed is converted with probability 1 - d/size.
func (g *Generator) applyGrowthPass(m *world.Map, pass growthPass) {
	seeds := int(float64(m.Width*m.Height) / 100 * pass.seedsPer100)
	if seeds < 1 {
		seeds = 1
	}
	for i := 0; i < seeds; i++ {
		seed := world.Position{X: g.rng.Intn(m.Width), Y: g.rng.Intn(m.Height)}
		size := pass.minSize + g.rng.Intn(pass.maxSize-pass.minSize+1)
		g.growBlob(m, seed, size, pass.terrain, pass.sources)
	}
}

func (g *Generator) growBlob(m *world.Map, seed world.Position, size int, terrain rules.Terrain, sources []rules.Terrain) {
	for dy := -size; dy <= size; dy++ {
		ny := seed.Y + dy
		if !m.InBoundsY(ny) {
			continue
		}
		for dx := -size; dx <= size; dx++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > float64(size) {
				continue
			}
			if g.rng.Float64() >= 1-dist/float64(size) {
				continue
			}
			tile := &m.Tiles[ny][world.WrapX(seed.X+dx, m.Width)]
			if terrainIn(tile.Terrain, sources) {
				tile.Terrain = terrain
			}
		}
	}
}

// traceRivers walks count random paths of 5-15 tiles, overwriting everything
// except ocean and mountains.
func (g *Generator) traceRivers(m *world.Map, count int) {
	for i := 0; i < count; i++ {
		pos := world.Position{X: g.rng.Intn(m.Width), Y: g.rng.Intn(m.Height)}
		length := 5 + g.rng.Intn(11)
		for step := 0; step < length; step++ {
			tile := m.TileAt(pos)
			if tile.Terrain != rules.Ocean && tile.Terrain != rules.Mountains {
				tile.Terrain = rules.River
			}
			pos = world.Position{
				X: pos.X + g.rng.Intn(3) - 1,
				Y: pos.Y + g.rng.Intn(3) - 1,
			}.Normalize(m.Width, m.Height)
		}
	}
}

// smoothCoastlines removes single-tile islands and single-tile lakes by
// flipping any tile whose 8-neighborhood is by majority the opposite of it.
func (g *Generator) smoothCoastlines(m *world.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := &m.Tiles[y][x]
			neighbors := m.Neighbors(tile.Position)
			ocean := 0
			for _, n := range neighbors {
				if n.Terrain == rules.Ocean {
					ocean++
				}
			}
			land := len(neighbors) - ocean
			if tile.Terrain == rules.Ocean && land > len(neighbors)*3/4 {
				tile.Terrain = rules.Grassland
			} else if tile.Terrain != rules.Ocean && ocean > len(neighbors)*3/4 {
				tile.Terrain = rules.Ocean
			}
		}
	}
}

func terrainIn(t rules.Terrain, set []rules.Terrain) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}
