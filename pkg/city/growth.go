// Package city implements the per-turn city engines: food growth and famine,
// and production accumulation with the completion carryover rules.
package city

import (
	"sort"

	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// GrowthResult reports what happened to a city's population this turn.
type GrowthResult struct {
	Grew    bool
	Starved bool
	Surplus int
}

// ProcessGrowth applies one turn of food accounting to the city given its
// food output for the turn. Positive surplus accumulates toward growth;
// negative surplus draws down storage and can starve a population point.
//
// A Granary changes both sides of the ledger: on growth the city keeps half
// its stored food, and on famine the population decrement is skipped.
func ProcessGrowth(c *entity.City, foodOutput int) GrowthResult {
	hasGranary := c.HasBuilding(rules.Granary)
	surplus := foodOutput - c.Population*2
	result := GrowthResult{Surplus: surplus}

	if surplus >= 0 {
		c.FoodStorage += surplus
		if c.FoodStorage >= c.FoodStorageCapacity && canGrow(c) {
			c.Population++
			if hasGranary {
				c.FoodStorage = c.FoodStorage / 2
			} else {
				c.FoodStorage = 0
			}
			c.FoodStorageCapacity = entity.FoodStorageCapacity(c.Population)
			result.Grew = true
		}
		return result
	}

	deficit := -surplus
	if c.FoodStorage >= deficit {
		c.FoodStorage -= deficit
		return result
	}

	c.FoodStorage = 0
	if !hasGranary && c.Population > 1 {
		c.Population--
		c.FoodStorageCapacity = entity.FoodStorageCapacity(c.Population)
		result.Starved = true
	}
	return result
}

// canGrow applies the population-limit buildings: growing past 10 requires
// an Aqueduct, past 12 a Sewer System.
func canGrow(c *entity.City) bool {
	if c.Population >= 10 && !c.HasBuilding(rules.Aqueduct) {
		return false
	}
	if c.Population >= 12 && !c.HasBuilding(rules.SewerSystem) {
		return false
	}
	return true
}

// FoodOutput computes the city's per-turn food from worked tiles: the city
// tile is always worked, and each population point works the best remaining
// tile in the 8-neighborhood. Citizens beyond the available tiles become
// specialists worth one food each. Building bonuses apply on top.
func FoodOutput(c *entity.City, m *world.Map) int {
	out := tileFood(m.TileAt(c.Position))

	neighbors := m.Neighbors(c.Position)
	yields := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		yields = append(yields, tileFood(n))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(yields)))

	for i := 0; i < c.Population && i < len(yields); i++ {
		out += yields[i]
	}
	if c.Population > len(yields) {
		out += c.Population - len(yields)
	}

	for _, b := range c.Buildings {
		out += rules.BuildingInfo(b).FoodBonus
	}
	return out
}

// tileFood is the food yield of one worked tile. Irrigation adds one.
func tileFood(t *world.Tile) int {
	food := rules.TerrainInfo(t.Terrain).Food
	if t.HasImprovement(world.Irrigation) {
		food++
	}
	return food
}

// ProductionOutput computes the city's per-turn production points.
func ProductionOutput(c *entity.City) int {
	out := 1 + c.Population/2
	for _, b := range c.Buildings {
		out += rules.BuildingInfo(b).ProductionBonus
	}
	return out
}

// ScienceOutput computes the city's per-turn science.
func ScienceOutput(c *entity.City) int {
	out := 1 + c.Population/2
	for _, b := range c.Buildings {
		out += rules.BuildingInfo(b).ScienceBonus
	}
	return out
}

// GoldOutput computes the city's per-turn gold before government modifiers.
func GoldOutput(c *entity.City) int {
	out := c.Population
	for _, b := range c.Buildings {
		out += rules.BuildingInfo(b).GoldBonus
	}
	return out
}

// CultureOutput computes the city's per-turn culture.
func CultureOutput(c *entity.City) int {
	out := 1
	for _, b := range c.Buildings {
		out += rules.BuildingInfo(b).CultureBonus
	}
	return out
}
