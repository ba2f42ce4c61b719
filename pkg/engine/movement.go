package engine

import (
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// roadCost is the movement cost of a step where both endpoints carry roads,
// regardless of terrain.
const roadCost = 1.0 / 3.0

// moveEpsilon absorbs binary float residue from road thirds: three road
// steps must drain one full movement point to exactly zero, not to 5.5e-17.
const moveEpsilon = 1e-9

// MoveUnit moves a unit one step to the target tile. Returns false on any
// rule violation, leaving all state unchanged. Per classic rules a unit may
// always enter an adjacent tile even when the cost exceeds its remaining
// movement; the move then drains movement to exactly zero. A move is refused
// for movement reasons only when the unit has no points left at all.
func (g *Game) MoveUnit(id entity.ID, target world.Position) bool {
	if g.phase != PhasePlaying {
		return false
	}
	u := g.findUnit(id)
	if u == nil || u.PlayerID != g.players[g.current].ID {
		return false
	}
	if u.MovementPoints <= 0 {
		return false
	}
	target = target.Normalize(g.worldMap.Width, g.worldMap.Height)
	if !world.Adjacent(u.Position, target, g.worldMap.Width) {
		return false
	}
	if !g.canEnter(u, target) {
		return false
	}

	cost := g.moveCost(u.Position, target)
	u.ClearOrders()
	u.Sleeping = false
	u.Position = target
	u.MovementPoints -= cost
	if u.MovementPoints < moveEpsilon {
		u.MovementPoints = 0
	}
	if u.MovementPoints <= 0 {
		g.removeFromQueue(u.ID)
	}
	g.bus.Publish(event.NewUnitEvent(event.UnitMoved, g, string(u.ID), u.PlayerID, target.X, target.Y))
	return true
}

// canEnter checks terrain passability for the unit's category and tile
// occupancy. Enemy-held tiles are never enterable by moving; combat is its
// own intent.
func (g *Game) canEnter(u *entity.Unit, target world.Position) bool {
	tile := g.worldMap.TileAt(target)
	for _, other := range g.unitsAt(target) {
		if other.PlayerID != u.PlayerID {
			return false
		}
	}
	if c := g.cityAt(target); c != nil && c.PlayerID != u.PlayerID {
		return false
	}

	switch u.Stats().Category {
	case rules.CategoryNaval:
		return tile.Terrain == rules.Ocean || g.cityAt(target) != nil
	case rules.CategoryAir:
		return true
	default:
		if tile.Terrain == rules.Ocean {
			return g.transportHasRoom(u, target)
		}
		return rules.TerrainInfo(tile.Terrain).Passable
	}
}

// transportHasRoom reports whether a same-player naval transport on the
// target ocean tile has spare cargo capacity for one more ground unit.
func (g *Game) transportHasRoom(u *entity.Unit, target world.Position) bool {
	capacity := 0
	aboard := 0
	for _, other := range g.unitsAt(target) {
		if other.PlayerID != u.PlayerID {
			return false
		}
		if other.Stats().Category == rules.CategoryNaval {
			capacity += other.Stats().CargoCapacity
		} else {
			aboard++
		}
	}
	return capacity > aboard
}

// moveCost is the cost of stepping onto dest: a third of a point when roads
// connect both endpoints, otherwise the destination terrain's movement cost.
func (g *Game) moveCost(from, dest world.Position) float64 {
	fromTile := g.worldMap.TileAt(from)
	destTile := g.worldMap.TileAt(dest)
	if fromTile.HasImprovement(world.Road) && destTile.HasImprovement(world.Road) {
		return roadCost
	}
	return float64(rules.TerrainInfo(destTile.Terrain).MovementCost)
}
