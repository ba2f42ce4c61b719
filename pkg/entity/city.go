package entity

import (
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// ProductionKind distinguishes what a city is building. The completion rules
// differ per kind (unit completion resets accumulated points, building
// completion carries them over, wonder completion clears both).
type ProductionKind int

const (
	ProduceUnit ProductionKind = iota
	ProduceBuilding
	ProduceWonder
)

// Production is a city's active build order.
type Production struct {
	Kind           ProductionKind
	Unit           rules.UnitType
	Building       rules.BuildingType
	TurnsRemaining int
}

// City is a settlement owned by a player.
type City struct {
	ID                  ID
	Name                string
	Position            world.Position
	Population          int
	PlayerID            int
	Buildings           []rules.BuildingType
	Production          *Production
	Food                int // per-turn food output, recomputed each turn
	ProductionPoints    int // accumulated shields
	Science             int
	Culture             int
	FoodStorage         int
	FoodStorageCapacity int
}

// NewCity founds a city of population 1 at the given position.
func NewCity(name string, playerID int, pos world.Position) *City {
	c := &City{
		ID:         NewID(),
		Name:       name,
		Position:   pos,
		Population: 1,
		PlayerID:   playerID,
	}
	c.FoodStorageCapacity = FoodStorageCapacity(c.Population)
	return c
}

// FoodStorageCapacity is the food required for a city of the given population
// to grow: 20 at population 1, 30 at 2, then 40 + 10 per point above 3.
func FoodStorageCapacity(population int) int {
	switch {
	case population <= 1:
		return 20
	case population == 2:
		return 30
	default:
		return 40 + (population-3)*10
	}
}

// HasBuilding reports whether the city contains the given building.
func (c *City) HasBuilding(b rules.BuildingType) bool {
	for _, existing := range c.Buildings {
		if existing == b {
			return true
		}
	}
	return false
}

// AddBuilding appends the building if not already present.
func (c *City) AddBuilding(b rules.BuildingType) {
	if !c.HasBuilding(b) {
		c.Buildings = append(c.Buildings, b)
	}
}

// Clone returns a deep copy of the city.
func (c *City) Clone() *City {
	dup := *c
	if c.Buildings != nil {
		dup.Buildings = append([]rules.BuildingType(nil), c.Buildings...)
	}
	if c.Production != nil {
		prod := *c.Production
		dup.Production = &prod
	}
	return &dup
}
