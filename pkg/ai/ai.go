// Package ai implements a heuristic computer player. It drives the game
// exclusively through the same intent API the human UI uses, reading state
// only via snapshots, so the engine can treat it as a black box.
package ai

import (
	"context"
	"math/rand"

	"github.com/opd-ai/go-empire/pkg/engine"
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// Player is a rule-based AI driver.
type Player struct {
	rng *rand.Rand
}

// NewPlayer returns an AI driver with its own RNG so AI decisions do not
// perturb the engine's combat/map stream.
func NewPlayer(seed int64) *Player {
	return &Player{rng: rand.New(rand.NewSource(seed))}
}

// ExecuteTurn plays out one full turn for the player: research selection,
// city production, then unit orders.
func (a *Player) ExecuteTurn(ctx context.Context, g *engine.Game, playerID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.chooseResearch(g, playerID)
	a.manageCities(g, playerID)
	a.commandUnits(g, playerID)
	return nil
}

func (a *Player) chooseResearch(g *engine.Game, playerID int) {
	state := g.GameState()
	var p *entity.Player
	for _, candidate := range state.Players {
		if candidate.ID == playerID {
			p = candidate
			break
		}
	}
	if p == nil || p.CurrentResearch != rules.NoTech {
		return
	}
	for _, tech := range rules.AllTechs() {
		if rules.CanResearch(tech, p.Technologies) {
			g.SetCurrentResearch(playerID, tech)
			return
		}
	}
}

func (a *Player) manageCities(g *engine.Game, playerID int) {
	state := g.GameState()
	for _, c := range state.PlayerCities(playerID) {
		if c.Production != nil {
			continue
		}
		// Granary first, then military.
		if !c.HasBuilding(rules.Granary) {
			if g.ChangeCityProduction(c.ID, entity.Production{Kind: entity.ProduceBuilding, Building: rules.Granary}) {
				continue
			}
		}
		g.ChangeCityProduction(c.ID, entity.Production{Kind: entity.ProduceUnit, Unit: rules.Militia})
	}
}

func (a *Player) commandUnits(g *engine.Game, playerID int) {
	state := g.GameState()
	for _, u := range state.PlayerUnits(playerID) {
		if u.Busy() || u.Sleeping {
			continue
		}
		switch {
		case u.Stats().CanFoundCity:
			a.runSettler(g, state, u)
		case u.Stats().CanAttack:
			a.runMilitary(g, state, u)
		default:
			a.wander(g, state, u)
		}
	}
}

// runSettler founds on the spot when legal, otherwise walks toward open
// ground.
func (a *Player) runSettler(g *engine.Game, state *engine.GameState, u *entity.Unit) {
	if g.FoundCity(u.ID, "") != nil {
		return
	}
	a.wander(g, state, u)
}

// runMilitary attacks an adjacent enemy when one exists, garrisons a city
// tile, or wanders.
func (a *Player) runMilitary(g *engine.Game, state *engine.GameState, u *entity.Unit) {
	width := state.WorldMap.Width
	for _, other := range state.Units {
		if other.PlayerID == u.PlayerID {
			continue
		}
		if world.Adjacent(u.Position, other.Position, width) {
			if g.AttackUnit(u.ID, other.ID) != nil {
				return
			}
		}
	}
	for _, c := range state.PlayerCities(u.PlayerID) {
		if c.Position == u.Position {
			g.FortifyUnit(u.ID)
			return
		}
	}
	a.wander(g, state, u)
}

// wander takes up to the unit's movement in random adjacent steps.
func (a *Player) wander(g *engine.Game, state *engine.GameState, u *entity.Unit) {
	pos := u.Position
	for i := 0; i < int(u.MaxMovementPoints); i++ {
		target := world.Position{
			X: pos.X + a.rng.Intn(3) - 1,
			Y: pos.Y + a.rng.Intn(3) - 1,
		}
		if target == pos {
			continue
		}
		if !g.MoveUnit(u.ID, target) {
			continue
		}
		pos = target.Normalize(state.WorldMap.Width, state.WorldMap.Height)
	}
}
