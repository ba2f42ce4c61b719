package mapgen

import (
	"math"

	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// landmass is an elliptical continent placed at fractional map coordinates.
type landmass struct {
	name          string
	cx, cy        float64 // center, fraction of width/height
	rx, ry        float64 // radii, fraction of width/height
	tilt          float64 // radians
	edgeRoughness float64
}

// Hand-tuned ellipses approximating the real continents on a cylinder.
var earthLandmasses = []landmass{
	{name: "North America", cx: 0.18, cy: 0.28, rx: 0.11, ry: 0.20, tilt: -0.3, edgeRoughness: 0.25},
	{name: "South America", cx: 0.26, cy: 0.68, rx: 0.06, ry: 0.18, tilt: 0.2, edgeRoughness: 0.2},
	{name: "Eurasia", cx: 0.62, cy: 0.26, rx: 0.22, ry: 0.16, tilt: 0.05, edgeRoughness: 0.3},
	{name: "Africa", cx: 0.52, cy: 0.58, rx: 0.09, ry: 0.19, tilt: 0.0, edgeRoughness: 0.2},
	{name: "Australia", cx: 0.84, cy: 0.74, rx: 0.07, ry: 0.08, tilt: 0.0, edgeRoughness: 0.15},
	{name: "Greenland", cx: 0.32, cy: 0.10, rx: 0.04, ry: 0.06, tilt: 0.0, edgeRoughness: 0.3},
}

// namedRange is a mountain chain, desert, or forest traced between two
// fractional map points.
type namedFeature struct {
	name      string
	terrain   rules.Terrain
	x1, y1    float64
	x2, y2    float64
	halfWidth int
}

var earthFeatures = []namedFeature{
	{name: "Rockies", terrain: rules.Mountains, x1: 0.14, y1: 0.16, x2: 0.19, y2: 0.42, halfWidth: 1},
	{name: "Andes", terrain: rules.Mountains, x1: 0.23, y1: 0.54, x2: 0.25, y2: 0.84, halfWidth: 1},
	{name: "Alps", terrain: rules.Mountains, x1: 0.50, y1: 0.28, x2: 0.54, y2: 0.30, halfWidth: 1},
	{name: "Himalayas", terrain: rules.Mountains, x1: 0.68, y1: 0.36, x2: 0.76, y2: 0.38, halfWidth: 1},
	{name: "Urals", terrain: rules.Mountains, x1: 0.61, y1: 0.14, x2: 0.62, y2: 0.28, halfWidth: 1},
	{name: "Sahara", terrain: rules.Desert, x1: 0.46, y1: 0.46, x2: 0.58, y2: 0.50, halfWidth: 2},
	{name: "Gobi", terrain: rules.Desert, x1: 0.72, y1: 0.30, x2: 0.78, y2: 0.32, halfWidth: 2},
	{name: "Arabian", terrain: rules.Desert, x1: 0.58, y1: 0.44, x2: 0.62, y2: 0.48, halfWidth: 1},
	{name: "Amazon", terrain: rules.Jungle, x1: 0.24, y1: 0.58, x2: 0.30, y2: 0.64, halfWidth: 2},
	{name: "Congo", terrain: rules.Jungle, x1: 0.50, y1: 0.58, x2: 0.55, y2: 0.62, halfWidth: 2},
	{name: "Taiga", terrain: rules.Forest, x1: 0.56, y1: 0.14, x2: 0.80, y2: 0.16, halfWidth: 1},
	{name: "Boreal", terrain: rules.Forest, x1: 0.12, y1: 0.16, x2: 0.24, y2: 0.18, halfWidth: 1},
}

var earthRivers = []namedFeature{
	{name: "Mississippi", terrain: rules.River, x1: 0.19, y1: 0.26, x2: 0.21, y2: 0.42, halfWidth: 0},
	{name: "Nile", terrain: rules.River, x1: 0.55, y1: 0.62, x2: 0.56, y2: 0.44, halfWidth: 0},
	{name: "Volga", terrain: rules.River, x1: 0.59, y1: 0.18, x2: 0.60, y2: 0.30, halfWidth: 0},
	{name: "Yangtze", terrain: rules.River, x1: 0.74, y1: 0.36, x2: 0.80, y2: 0.38, halfWidth: 0},
	{name: "Amazon River", terrain: rules.River, x1: 0.22, y1: 0.60, x2: 0.29, y2: 0.62, halfWidth: 0},
}

func (g *Generator) generateEarth(width, height int) *world.Map {
	m := world.NewMap(width, height, rules.Ocean)

	for _, lm := range earthLandmasses {
		g.placeLandmass(m, lm)
	}
	g.applyClimateBands(m)
	for _, f := range earthFeatures {
		g.traceFeature(m, f, false)
	}
	for _, r := range earthRivers {
		g.traceFeature(m, r, true)
	}
	g.smoothCoastlines(m)
	return m
}

// placeLandmass fills a rough ellipse with grassland. Edge roughness perturbs
// the boundary so coastlines are not perfectly smooth.
func (g *Generator) placeLandmass(m *world.Map, lm landmass) {
	cx := lm.cx * float64(m.Width)
	cy := lm.cy * float64(m.Height)
	rx := lm.rx * float64(m.Width)
	ry := lm.ry * float64(m.Height)
	cos, sin := math.Cos(lm.tilt), math.Sin(lm.tilt)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			// rotate into the ellipse frame
			ex := (dx*cos + dy*sin) / rx
			ey := (-dx*sin + dy*cos) / ry
			d := ex*ex + ey*ey
			if d <= 1.0 || (d <= 1.3 && g.rng.Float64() < lm.edgeRoughness) {
				m.Tiles[y][x].Terrain = rules.Grassland
			}
		}
	}
}

// applyClimateBands assigns biomes to land tiles by latitude: polar caps,
// tundra belts, temperate bands, and an equatorial band that leans toward
// plains and grassland.
func (g *Generator) applyClimateBands(m *world.Map) {
	for y := 0; y < m.Height; y++ {
		lat := math.Abs(float64(y)/float64(m.Height-1)-0.5) * 2 // 0 equator, 1 pole
		for x := 0; x < m.Width; x++ {
			tile := &m.Tiles[y][x]
			if tile.Terrain == rules.Ocean {
				continue
			}
			switch {
			case lat > 0.9:
				tile.Terrain = rules.Arctic
			case lat > 0.75:
				tile.Terrain = rules.Tundra
			case lat > 0.45:
				if g.rng.Float64() < 0.3 {
					tile.Terrain = rules.Plains
				} else {
					tile.Terrain = rules.Grassland
				}
			default:
				if g.rng.Float64() < 0.4 {
					tile.Terrain = rules.Plains
				} else {
					tile.Terrain = rules.Grassland
				}
			}
		}
	}
}

// traceFeature walks a line between the feature's two endpoints, painting the
// feature terrain over land tiles within halfWidth of the path. Rivers also
// overwrite into the first ocean tile they reach and then stop.
func (g *Generator) traceFeature(m *world.Map, f namedFeature, river bool) {
	x1 := f.x1 * float64(m.Width)
	y1 := f.y1 * float64(m.Height)
	x2 := f.x2 * float64(m.Width)
	y2 := f.y2 * float64(m.Height)
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(x1 + (x2-x1)*t)
		py := int(y1 + (y2-y1)*t)
		if !m.InBoundsY(py) {
			continue
		}
		for dy := -f.halfWidth; dy <= f.halfWidth; dy++ {
			for dx := -f.halfWidth; dx <= f.halfWidth; dx++ {
				ny := py + dy
				if !m.InBoundsY(ny) {
					continue
				}
				tile := &m.Tiles[ny][world.WrapX(px+dx, m.Width)]
				if tile.Terrain == rules.Ocean {
					if river {
						return
					}
					continue
				}
				if tile.Terrain == rules.Mountains && river {
					continue
				}
				tile.Terrain = f.terrain
			}
		}
	}
}
