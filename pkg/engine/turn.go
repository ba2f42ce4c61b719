package engine

import (
	"context"
	"math"

	"github.com/opd-ai/go-empire/pkg/city"
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/rules"
)

// EndTurn finishes the current player's turn: runs their end-of-turn
// processing, advances to the next player (incrementing the turn counter on
// wraparound), and drives any AI players' turns back-to-back until a human
// player is current again. Once processing begins it runs to completion.
func (g *Game) EndTurn(ctx context.Context) {
	if g.phase != PhasePlaying {
		return
	}
	g.setSelected("")

	g.processPlayerTurn(ctx, g.players[g.current])
	g.advancePlayer()

	humans := 0
	for _, p := range g.players {
		if p.Human {
			humans++
		}
	}
	for humans > 0 && !g.players[g.current].Human {
		p := g.players[g.current]
		g.bus.Publish(event.NewPlayerEvent(event.AITurnStarted, g, p.ID, ""))
		if driver, ok := g.ai[p.ID]; ok {
			g.rebuildQueue(p.ID)
			if err := driver.ExecuteTurn(ctx, g, p.ID); err != nil {
				g.logger.Warn(ctx, "AI turn failed", "player", p.Name, "error", err.Error())
			}
		}
		g.processPlayerTurn(ctx, p)
		g.bus.Publish(event.NewPlayerEvent(event.AITurnEnded, g, p.ID, ""))
		g.advancePlayer()
	}

	g.beginTurnFor(ctx, g.players[g.current])
}

// advancePlayer moves currentPlayer circularly; wrapping back to the first
// player starts a new turn and refreshes the score.
func (g *Game) advancePlayer() {
	g.current = (g.current + 1) % len(g.players)
	if g.current == 0 {
		g.turn++
		g.updateScore()
		g.bus.Publish(event.NewTurnEvent(g, g.turn, g.players[g.current].ID))
	}
}

// beginTurnFor hands control to a human player: their activation queue is
// rebuilt and the first actionable unit selected.
func (g *Game) beginTurnFor(ctx context.Context, p *entity.Player) {
	g.rebuildQueue(p.ID)
	if p.Human {
		g.bus.Publish(event.NewPlayerEvent(event.HumanTurnStarted, g, p.ID, ""))
		// All units may be fortified or asleep; the advisory signal still
		// has to fire so the client can offer to end the turn.
		if g.queue.Len() == 0 {
			g.bus.Publish(event.NewPlayerEvent(event.EndOfTurn, g, p.ID, ""))
		}
	}
	if p.CurrentResearch == rules.NoTech && g.playerHasCity(p.ID) {
		g.bus.Publish(event.NewPlayerEvent(event.ResearchSelectionRequired, g, p.ID, ""))
	}
}

// processPlayerTurn is the per-player end-of-turn pass: unit upkeep
// (movement restore, fortification and road-building progression), city
// growth and production, and resource/research accrual.
func (g *Game) processPlayerTurn(ctx context.Context, p *entity.Player) {
	g.processUnits(p)
	g.processCities(ctx, p)
	g.accrueResources(p)

	if p.RevolutionTurns > 0 {
		p.RevolutionTurns--
		if p.RevolutionTurns == 0 {
			g.bus.Publish(event.NewPlayerEvent(event.ResearchSelectionRequired, g, p.ID, "government"))
		}
	}
}

func (g *Game) processUnits(p *entity.Player) {
	for _, u := range g.units {
		if u.PlayerID != p.ID {
			continue
		}
		if u.Fortifying {
			u.Fortifying = false
			u.FortificationTurns = 0
			u.Fortified = true
			g.bus.Publish(event.NewUnitEvent(event.UnitFortified, g, string(u.ID), u.PlayerID, u.Position.X, u.Position.Y))
		}
		if u.BuildingRoad {
			tile := g.worldMap.TileAt(u.Position)
			tile.AddImprovement(u.BuildingImprovement)
			u.BuildingRoad = false
			u.RoadBuildingTurns = 0
			g.bus.Publish(event.NewUnitEvent(event.TerrainImproved, g, string(u.ID), u.PlayerID, u.Position.X, u.Position.Y))
		}
		u.MovementPoints = u.MaxMovementPoints
	}
}

func (g *Game) processCities(ctx context.Context, p *entity.Player) {
	for _, c := range g.cities {
		if c.PlayerID != p.ID {
			continue
		}
		c.Food = city.FoodOutput(c, g.worldMap)
		growth := city.ProcessGrowth(c, c.Food)
		if growth.Grew {
			g.bus.Publish(event.NewCityEvent(event.CityGrew, g, string(c.ID), c.Name, p.ID))
		}

		result := city.ProcessProduction(c, p.Technologies)
		if result.CompletedUnit != nil {
			u := entity.NewUnit(*result.CompletedUnit, p.ID, c.Position)
			g.units = append(g.units, u)
			g.logger.Debug(ctx, "unit completed", "city", c.Name, "unit", u.Type.String())
		}
		if result.CompletedBuilding != nil {
			g.logger.Debug(ctx, "building completed", "city", c.Name, "building", result.CompletedBuilding.String())
		}
		if result.CompletedUnit != nil || result.CompletedBuilding != nil || result.Cancelled {
			g.bus.Publish(event.NewCityEvent(event.CityProductionChanged, g, string(c.ID), c.Name, p.ID))
		}
	}
}

// accrueResources totals city outputs into the player's science, gold, and
// culture, applying the government modifiers, then advances research.
func (g *Game) accrueResources(p *entity.Player) {
	gov := rules.GovernmentInfo(p.Government)
	science := 0
	gold := 0
	for _, c := range g.cities {
		if c.PlayerID != p.ID {
			continue
		}
		c.Science = city.ScienceOutput(c)
		c.Culture = city.CultureOutput(c)
		science += c.Science
		gold += city.GoldOutput(c)
		p.Culture += c.Culture
	}
	for _, c := range g.cities {
		if c.PlayerID != p.ID {
			continue
		}
		for _, b := range c.Buildings {
			gold -= rules.BuildingInfo(b).Maintenance
		}
	}
	science = int(math.Floor(float64(science) * gov.ScienceMod))
	gold = int(math.Floor(float64(gold) * gov.GoldMod))

	p.Science += science
	p.Gold += gold
	if p.Gold < 0 {
		p.Gold = 0
	}

	if p.CurrentResearch != rules.NoTech {
		p.CurrentResearchProgress += science
		if p.CurrentResearchProgress >= rules.TechInfo(p.CurrentResearch).Cost {
			g.completeResearch(p)
		}
	}
}

// updateScore recomputes each player's score: population plus technologies
// plus wonders.
func (g *Game) updateScore() {
	for _, p := range g.players {
		score := len(p.Technologies) * 2
		for _, c := range g.cities {
			if c.PlayerID != p.ID {
				continue
			}
			score += c.Population
			for _, b := range c.Buildings {
				if rules.BuildingInfo(b).IsWonder {
					score += 5
				}
			}
		}
		g.score[p.ID] = score
	}
}

func (g *Game) playerHasCity(playerID int) bool {
	for _, c := range g.cities {
		if c.PlayerID == playerID {
			return true
		}
	}
	return false
}
