// Package rules contains the static rule tables of the game: terrain, unit,
// building, technology and government catalogs. Everything in this package is
// immutable lookup data; nothing here touches game state.
package rules

// Terrain identifies a terrain type on the world map.
type Terrain int

const (
	Ocean Terrain = iota
	Grassland
	Plains
	Desert
	Tundra
	Arctic
	Forest
	Jungle
	Swamp
	Hills
	Mountains
	River
)

// Resource identifies a special resource that can appear on a tile.
type Resource int

const (
	NoResource Resource = iota
	Fish
	Whales
	Shield // extra production on grassland
	Horses
	Oasis
	Game
	Furs
	Gems
	Spice
	Coal
	Wine
	Gold
	Iron
	Oil
)

// ResourceChance pairs a resource with its per-tile spawn probability.
// During map generation resources are sampled in list order and the first
// success wins, so order is a deliberate tie-break.
type ResourceChance struct {
	Resource    Resource
	Probability float64
}

// TerrainStats describes the rules for one terrain type.
type TerrainStats struct {
	Name         string
	MovementCost int
	Passable     bool
	Food         int
	Production   int
	Trade        int
	CanFoundCity bool
	Resources    []ResourceChance
}

var terrainTable = map[Terrain]TerrainStats{
	Ocean: {
		Name: "Ocean", MovementCost: 1, Passable: false,
		Food: 1, Production: 0, Trade: 2, CanFoundCity: false,
		Resources: []ResourceChance{{Fish, 0.10}, {Whales, 0.04}},
	},
	Grassland: {
		Name: "Grassland", MovementCost: 1, Passable: true,
		Food: 2, Production: 1, Trade: 1, CanFoundCity: true,
		Resources: []ResourceChance{{Shield, 0.12}},
	},
	Plains: {
		Name: "Plains", MovementCost: 1, Passable: true,
		Food: 1, Production: 1, Trade: 1, CanFoundCity: true,
		Resources: []ResourceChance{{Horses, 0.08}},
	},
	Desert: {
		Name: "Desert", MovementCost: 1, Passable: true,
		Food: 0, Production: 1, Trade: 0, CanFoundCity: true,
		Resources: []ResourceChance{{Oasis, 0.06}, {Oil, 0.04}},
	},
	Tundra: {
		Name: "Tundra", MovementCost: 1, Passable: true,
		Food: 1, Production: 0, Trade: 0, CanFoundCity: true,
		Resources: []ResourceChance{{Game, 0.08}},
	},
	Arctic: {
		Name: "Arctic", MovementCost: 2, Passable: true,
		Food: 0, Production: 0, Trade: 0, CanFoundCity: false,
		Resources: []ResourceChance{{Furs, 0.05}},
	},
	Forest: {
		Name: "Forest", MovementCost: 2, Passable: true,
		Food: 1, Production: 2, Trade: 0, CanFoundCity: true,
		Resources: []ResourceChance{{Game, 0.10}, {Furs, 0.06}},
	},
	Jungle: {
		Name: "Jungle", MovementCost: 2, Passable: true,
		Food: 1, Production: 0, Trade: 0, CanFoundCity: true,
		Resources: []ResourceChance{{Gems, 0.07}},
	},
	Swamp: {
		Name: "Swamp", MovementCost: 2, Passable: true,
		Food: 1, Production: 0, Trade: 0, CanFoundCity: false,
		Resources: []ResourceChance{{Spice, 0.06}, {Oil, 0.04}},
	},
	Hills: {
		Name: "Hills", MovementCost: 2, Passable: true,
		Food: 1, Production: 0, Trade: 0, CanFoundCity: true,
		Resources: []ResourceChance{{Coal, 0.10}, {Wine, 0.06}},
	},
	Mountains: {
		Name: "Mountains", MovementCost: 3, Passable: true,
		Food: 0, Production: 1, Trade: 0, CanFoundCity: false,
		Resources: []ResourceChance{{Gold, 0.06}, {Iron, 0.08}},
	},
	River: {
		Name: "River", MovementCost: 1, Passable: true,
		Food: 2, Production: 0, Trade: 1, CanFoundCity: true,
		Resources: []ResourceChance{{Shield, 0.08}},
	},
}

// TerrainInfo returns the rule table entry for a terrain type. Unknown values
// are a programming error and panic.
func TerrainInfo(t Terrain) TerrainStats {
	stats, ok := terrainTable[t]
	if !ok {
		panic("rules: unknown terrain type")
	}
	return stats
}

// AllTerrains lists every terrain type, for iteration in generators and tests.
func AllTerrains() []Terrain {
	return []Terrain{
		Ocean, Grassland, Plains, Desert, Tundra, Arctic,
		Forest, Jungle, Swamp, Hills, Mountains, River,
	}
}

// RoughTerrain reports whether fortifying or road building on this terrain
// takes two turns instead of one.
func RoughTerrain(t Terrain) bool {
	switch t {
	case Forest, Jungle, Mountains, Hills, River:
		return true
	}
	return false
}

func (t Terrain) String() string { return TerrainInfo(t).Name }
