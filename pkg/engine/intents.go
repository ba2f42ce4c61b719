package engine

import (
	"github.com/opd-ai/go-empire/pkg/city"
	"github.com/opd-ai/go-empire/pkg/combat"
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// minCityDistance is the minimum wrapped distance between two cities.
const minCityDistance = 3

// AttackUnit resolves an attack between two units. Returns nil when the
// attack is not legal. Destroyed units are removed from the game; a
// defender's death on a tile the attacker borders does not move the
// attacker.
func (g *Game) AttackUnit(attackerID, defenderID entity.ID) *combat.Result {
	if g.phase != PhasePlaying {
		return nil
	}
	attacker := g.findUnit(attackerID)
	defender := g.findUnit(defenderID)
	if attacker == nil || defender == nil {
		return nil
	}
	if attacker.PlayerID != g.players[g.current].ID {
		return nil
	}
	if !combat.CanAttack(attacker, defender, g.worldMap.Width) {
		return nil
	}

	fortress := g.worldMap.TileAt(defender.Position).HasImprovement(world.Fortress)
	result := combat.Resolve(attacker, defender, fortress, g.rng)

	if !result.DefenderSurvived {
		g.removeUnit(defender.ID)
	}
	if !result.AttackerSurvived {
		g.removeUnit(attacker.ID)
	} else {
		g.removeFromQueue(attacker.ID) // movement is spent either way
	}
	g.bus.Publish(event.NewCombatEvent(g, string(attacker.ID), string(defender.ID),
		result.AttackerSurvived, result.DefenderSurvived))
	return &result
}

// FoundCity founds a city with the given settler, consuming it. With an
// empty name the player's civilization name list supplies one. Returns nil
// when founding is not legal here.
func (g *Game) FoundCity(unitID entity.ID, name string) *entity.City {
	if g.phase != PhasePlaying {
		return nil
	}
	u := g.findUnit(unitID)
	if u == nil || u.PlayerID != g.players[g.current].ID {
		return nil
	}
	if !u.Stats().CanFoundCity {
		return nil
	}
	tile := g.worldMap.TileAt(u.Position)
	if !rules.TerrainInfo(tile.Terrain).CanFoundCity {
		return nil
	}
	for _, existing := range g.cities {
		if world.Distance(u.Position, existing.Position, g.worldMap.Width) < minCityDistance {
			return nil
		}
	}

	p := g.players[g.current]
	if name == "" {
		name = p.NextCityName()
	} else {
		p.UsedCityNames[name] = true
	}
	c := entity.NewCity(name, p.ID, u.Position)
	g.cities = append(g.cities, c)
	g.removeUnit(u.ID)
	g.bus.Publish(event.NewCityEvent(event.CityFounded, g, string(c.ID), c.Name, p.ID))
	return c
}

// FortifyUnit puts the unit into the fortification state, ending its turn.
// On a city tile or open terrain (grassland, desert) the fortification takes
// effect immediately; rough terrain needs a second turn to complete.
func (g *Game) FortifyUnit(id entity.ID) bool {
	if g.phase != PhasePlaying {
		return false
	}
	u := g.findUnit(id)
	if u == nil || u.PlayerID != g.players[g.current].ID || u.Busy() {
		return false
	}
	if u.Stats().Category == rules.CategoryAir {
		return false
	}

	u.MovementPoints = 0
	terrain := g.worldMap.TileAt(u.Position).Terrain
	if g.cityAt(u.Position) != nil || !rules.RoughTerrain(terrain) {
		u.Fortified = true
		g.bus.Publish(event.NewUnitEvent(event.UnitFortified, g, string(u.ID), u.PlayerID, u.Position.X, u.Position.Y))
	} else {
		u.Fortifying = true
		u.FortificationTurns = 1
	}
	g.removeFromQueue(u.ID)
	return true
}

// SleepUnit puts the unit to sleep indefinitely, ending its turn. Sleeping
// units stay out of the activation queue until explicitly woken.
func (g *Game) SleepUnit(id entity.ID) bool {
	if g.phase != PhasePlaying {
		return false
	}
	u := g.findUnit(id)
	if u == nil || u.PlayerID != g.players[g.current].ID || u.Busy() {
		return false
	}
	u.Sleeping = true
	u.MovementPoints = 0
	g.removeFromQueue(u.ID)
	return true
}

// WakeUnit clears any waiting state, restores full movement, and makes the
// unit the selected unit by inserting it at the queue cursor.
func (g *Game) WakeUnit(id entity.ID) bool {
	if g.phase != PhasePlaying {
		return false
	}
	u := g.findUnit(id)
	if u == nil || u.PlayerID != g.players[g.current].ID {
		return false
	}
	if !u.Busy() && !u.Sleeping {
		return false
	}
	u.ClearOrders()
	u.Sleeping = false
	u.MovementPoints = u.MaxMovementPoints
	g.queue.InsertAtCursor(u.ID)
	g.setSelected(u.ID)
	return true
}

// BuildRoad orders the selected settler-type unit to build a road on its
// tile. Open terrain finishes immediately; rough terrain takes a second
// turn. Returns false when the unit cannot build or a road already exists.
func (g *Game) BuildRoad(id entity.ID) bool {
	return g.buildImprovement(id, world.Road)
}

// BuildIrrigation orders irrigation on the unit's tile.
func (g *Game) BuildIrrigation(id entity.ID) bool {
	return g.buildImprovement(id, world.Irrigation)
}

// BuildMine orders a mine on the unit's tile.
func (g *Game) BuildMine(id entity.ID) bool {
	return g.buildImprovement(id, world.Mine)
}

// BuildFortress orders a fortress on the unit's tile.
func (g *Game) BuildFortress(id entity.ID) bool {
	return g.buildImprovement(id, world.Fortress)
}

func (g *Game) buildImprovement(id entity.ID, imp world.ImprovementType) bool {
	if g.phase != PhasePlaying {
		return false
	}
	u := g.findUnit(id)
	if u == nil || u.PlayerID != g.players[g.current].ID || u.Busy() {
		return false
	}
	if !u.Stats().CanBuildRoads {
		return false
	}
	tile := g.worldMap.TileAt(u.Position)
	if tile.Terrain == rules.Ocean || tile.HasImprovement(imp) {
		return false
	}
	if !improvementLegal(imp, tile.Terrain) {
		return false
	}

	u.MovementPoints = 0
	if !rules.RoughTerrain(tile.Terrain) {
		tile.AddImprovement(imp)
		g.bus.Publish(event.NewUnitEvent(event.TerrainImproved, g, string(u.ID), u.PlayerID, u.Position.X, u.Position.Y))
	} else {
		u.BuildingRoad = true
		u.RoadBuildingTurns = 1
		u.BuildingImprovement = imp
	}
	g.removeFromQueue(u.ID)
	return true
}

// improvementLegal is the terrain table for improvements: mines want rough
// dry ground, irrigation wants ground that can carry water.
func improvementLegal(imp world.ImprovementType, terrain rules.Terrain) bool {
	switch imp {
	case world.Irrigation:
		switch terrain {
		case rules.Grassland, rules.Plains, rules.Desert, rules.River, rules.Hills:
			return true
		}
		return false
	case world.Mine:
		switch terrain {
		case rules.Hills, rules.Mountains, rules.Desert:
			return true
		}
		return false
	}
	return true // roads and fortresses go anywhere on land
}

// ChangeCityProduction sets a city's build order. Returns false when the
// city is not the current player's or the item is not available.
func (g *Game) ChangeCityProduction(cityID entity.ID, prod entity.Production) bool {
	if g.phase != PhasePlaying {
		return false
	}
	c := g.findCity(cityID)
	if c == nil || c.PlayerID != g.players[g.current].ID {
		return false
	}
	p := g.players[g.current]
	if !city.StartProduction(c, prod, p.Technologies) {
		return false
	}
	g.bus.Publish(event.NewCityEvent(event.CityProductionChanged, g, string(c.ID), c.Name, p.ID))
	return true
}

// SetCurrentResearch selects the player's research target. Returns false
// when prerequisites are not met or the tech is already known.
func (g *Game) SetCurrentResearch(playerID int, tech rules.TechType) bool {
	p := g.findPlayer(playerID)
	if p == nil {
		return false
	}
	if !rules.CanResearch(tech, p.Technologies) {
		return false
	}
	if p.CurrentResearch != tech {
		p.CurrentResearch = tech
		p.CurrentResearchProgress = 0
	}
	return true
}

// ResearchTechnology completes the player's current research if enough
// progress has accumulated. Normally research completes during turn
// processing; this intent lets the science advisor finish an already-paid
// technology explicitly.
func (g *Game) ResearchTechnology(playerID int) bool {
	p := g.findPlayer(playerID)
	if p == nil || p.CurrentResearch == rules.NoTech {
		return false
	}
	if p.CurrentResearchProgress < rules.TechInfo(p.CurrentResearch).Cost {
		return false
	}
	g.completeResearch(p)
	return true
}

// StartRevolution throws the player's government into anarchy for a fixed
// number of turns, after which ChangeGovernment may pick the new form.
func (g *Game) StartRevolution(playerID int) bool {
	p := g.findPlayer(playerID)
	if p == nil || p.Government == rules.Anarchy {
		return false
	}
	p.Government = rules.Anarchy
	p.RevolutionTurns = rules.RevolutionTurns
	g.bus.Publish(event.NewPlayerEvent(event.GovernmentChanged, g, p.ID, rules.Anarchy.String()))
	return true
}

// ChangeGovernment installs a new government once the revolution has run its
// course. Requires the enabling technology.
func (g *Game) ChangeGovernment(playerID int, gov rules.GovernmentType) bool {
	p := g.findPlayer(playerID)
	if p == nil || gov == rules.Anarchy {
		return false
	}
	if p.Government != rules.Anarchy || p.RevolutionTurns > 0 {
		return false
	}
	if req := rules.GovernmentInfo(gov).Requires; req != rules.NoTech && !p.Knows(req) {
		return false
	}
	p.Government = gov
	g.bus.Publish(event.NewPlayerEvent(event.GovernmentChanged, g, p.ID, gov.String()))
	return true
}

func (g *Game) completeResearch(p *entity.Player) {
	tech := p.CurrentResearch
	p.Technologies[tech] = true
	p.CurrentResearchProgress = 0
	p.CurrentResearch = rules.NoTech
	g.bus.Publish(event.NewPlayerEvent(event.TechnologyResearched, g, p.ID, tech.String()))
	g.bus.Publish(event.NewPlayerEvent(event.ResearchSelectionRequired, g, p.ID, ""))
}
