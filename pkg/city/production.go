package city

import (
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/rules"
)

// ProductionResult reports what a city finished this turn.
type ProductionResult struct {
	CompletedUnit     *rules.UnitType
	CompletedBuilding *rules.BuildingType
	Cancelled         bool // queued item no longer legal, dropped silently
}

// StartProduction sets the city's build order. Returns false when the item is
// not legal for the city right now (missing technology, duplicate building).
func StartProduction(c *entity.City, prod entity.Production, known map[rules.TechType]bool) bool {
	if !productionLegal(c, &prod, known) {
		return false
	}
	cost := productionCost(&prod)
	output := ProductionOutput(c)
	prod.TurnsRemaining = turnsFor(cost-c.ProductionPoints, output)
	c.Production = &prod
	return true
}

// ProcessProduction applies one turn of production to the city. Points
// accumulate whether or not a build order is active; completion follows the
// carryover rules:
//
//   - a completed unit resets accumulated points to zero, then auto-orders
//     the cheapest available land unit (clearing the slot when none exists);
//   - a completed building leaves accumulated points untouched so they roll
//     into the next order, wonders included;
//   - a completed wonder clears both the slot and the points.
//
// Before completing, the order is re-validated against the city and the
// player's technologies; a stale order is cancelled and its points forfeit.
func ProcessProduction(c *entity.City, known map[rules.TechType]bool) ProductionResult {
	c.ProductionPoints += ProductionOutput(c)
	if c.Production == nil {
		return ProductionResult{}
	}

	c.Production.TurnsRemaining--
	cost := productionCost(c.Production)
	if c.Production.TurnsRemaining > 0 && c.ProductionPoints < cost {
		return ProductionResult{}
	}
	if c.ProductionPoints < cost {
		// Turn estimate ran out before the points did; keep building.
		c.Production.TurnsRemaining = turnsFor(cost-c.ProductionPoints, ProductionOutput(c))
		return ProductionResult{}
	}

	if !productionLegal(c, c.Production, known) {
		c.Production = nil
		c.ProductionPoints = 0
		return ProductionResult{Cancelled: true}
	}

	var result ProductionResult
	switch c.Production.Kind {
	case entity.ProduceUnit:
		completed := c.Production.Unit
		result.CompletedUnit = &completed
		c.ProductionPoints = 0
		c.Production = nil
		if next, ok := rules.CheapestLandUnit(known); ok {
			StartProduction(c, entity.Production{Kind: entity.ProduceUnit, Unit: next}, known)
		}
	case entity.ProduceBuilding:
		completed := c.Production.Building
		result.CompletedBuilding = &completed
		c.AddBuilding(completed)
		c.Production = nil
	case entity.ProduceWonder:
		completed := c.Production.Building
		result.CompletedBuilding = &completed
		c.AddBuilding(completed)
		c.Production = nil
		c.ProductionPoints = 0
	}
	return result
}

func productionCost(p *entity.Production) int {
	if p.Kind == entity.ProduceUnit {
		return rules.UnitInfo(p.Unit).Cost
	}
	return rules.BuildingInfo(p.Building).Cost
}

func productionLegal(c *entity.City, p *entity.Production, known map[rules.TechType]bool) bool {
	switch p.Kind {
	case entity.ProduceUnit:
		req := rules.UnitInfo(p.Unit).Requires
		return req == rules.NoTech || known[req]
	case entity.ProduceBuilding, entity.ProduceWonder:
		stats := rules.BuildingInfo(p.Building)
		if c.HasBuilding(p.Building) {
			return false
		}
		if stats.IsWonder != (p.Kind == entity.ProduceWonder) {
			return false
		}
		return stats.Requires == rules.NoTech || known[stats.Requires]
	}
	return false
}

func turnsFor(remaining, output int) int {
	if remaining <= 0 {
		return 1
	}
	if output < 1 {
		output = 1
	}
	turns := (remaining + output - 1) / output
	if turns < 1 {
		turns = 1
	}
	return turns
}
