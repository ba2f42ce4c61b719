// Package engine owns the game state and sequences play. The Game facade is
// the sole writer of the state graph: every inbound intent validates against
// the catalogs first, mutates synchronously, and publishes a domain event.
// Observers (bridge, AI, tests) read through snapshots only.
package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/opd-ai/go-empire/pkg/config"
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/logging"
	"github.com/opd-ai/go-empire/pkg/mapgen"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// GamePhase is the lifecycle state of a game session.
type GamePhase int

const (
	PhaseSetup GamePhase = iota
	PhasePlaying
	PhasePaused
	PhaseEnded
)

func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// AIDriver executes a full turn for a non-human player using the same intent
// API the UI uses. The engine treats it as a black box.
type AIDriver interface {
	ExecuteTurn(ctx context.Context, g *Game, playerID int) error
}

// Game is the turn orchestrator. All fields are private; mutation happens
// only through intent methods and EndTurn.
type Game struct {
	cfg      *config.GameConfig
	bus      *event.Bus
	logger   *logging.Logger
	rng      *rand.Rand
	phase    GamePhase
	turn     int
	current  int // index into players
	players  []*entity.Player
	worldMap *world.Map
	units    []*entity.Unit
	cities   []*entity.City
	score    map[int]int

	queue    *UnitQueue
	selected entity.ID
	ai       map[int]AIDriver
}

// NewGame builds a game from configuration: generates the world, seats the
// players, and places their starting units. The event bus is injected so
// observers can subscribe before initialization events fire.
func NewGame(cfg *config.GameConfig, bus *event.Bus, logger *logging.Logger) (*Game, error) {
	if len(cfg.Players) == 0 {
		return nil, fmt.Errorf("engine: no players configured")
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	gen := mapgen.NewGenerator(cfg.Seed)
	m, err := gen.Generate(cfg.MapWidth, cfg.MapHeight, mapgen.Scenario(cfg.Scenario))
	if err != nil {
		return nil, fmt.Errorf("engine: map generation failed: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		bus:      bus,
		logger:   logger,
		rng:      rng,
		phase:    PhaseSetup,
		turn:     1,
		worldMap: m,
		score:    make(map[int]int),
		queue:    NewUnitQueue(),
		ai:       make(map[int]AIDriver),
	}

	for i, pc := range cfg.Players {
		p := entity.NewPlayer(i, pc.Name, entity.Civilization(pc.Civilization), pc.Color, pc.Human)
		g.players = append(g.players, p)
		g.placeStartingUnits(p)
	}
	return g, nil
}

// placeStartingUnits drops each player's initial settlers and escort on a
// random foundable land tile.
func (g *Game) placeStartingUnits(p *entity.Player) {
	pos := g.randomStartPosition()
	settlers := g.cfg.StartingSettlers
	if settlers < 1 {
		settlers = 1
	}
	if !p.Human && g.cfg.Difficulty == config.DifficultyHard {
		settlers++
	}
	for i := 0; i < settlers; i++ {
		g.units = append(g.units, entity.NewUnit(rules.Settlers, p.ID, pos))
	}
	g.units = append(g.units, entity.NewUnit(rules.Militia, p.ID, pos))
}

func (g *Game) randomStartPosition() world.Position {
	for attempt := 0; attempt < 1000; attempt++ {
		pos := world.Position{X: g.rng.Intn(g.worldMap.Width), Y: g.rng.Intn(g.worldMap.Height)}
		if rules.TerrainInfo(g.worldMap.TileAt(pos).Terrain).CanFoundCity {
			return pos
		}
	}
	// Degenerate all-ocean map; fall back to the center.
	return world.Position{X: g.worldMap.Width / 2, Y: g.worldMap.Height / 2}
}

// RegisterAI attaches a driver for a non-human player.
func (g *Game) RegisterAI(playerID int, driver AIDriver) {
	g.ai[playerID] = driver
}

// Start moves the game into the playing phase and hands the first player
// their turn.
func (g *Game) Start(ctx context.Context) {
	if g.phase != PhaseSetup {
		return
	}
	g.phase = PhasePlaying
	g.bus.Publish(event.NewPlayerEvent(event.GameInitialized, g, g.players[g.current].ID, ""))
	g.beginTurnFor(ctx, g.players[g.current])
}

// Pause suspends play; Resume returns to it. Intents are rejected while
// paused.
func (g *Game) Pause() {
	if g.phase == PhasePlaying {
		g.phase = PhasePaused
	}
}

// Resume continues a paused game.
func (g *Game) Resume() {
	if g.phase == PhasePaused {
		g.phase = PhasePlaying
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() GamePhase { return g.phase }

// Turn returns the current turn number.
func (g *Game) Turn() int { return g.turn }

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *entity.Player { return g.players[g.current] }

// IsCurrentPlayerAI reports whether the active player is machine-driven. The
// input layer uses this to drop human input during AI turns.
func (g *Game) IsCurrentPlayerAI() bool { return !g.players[g.current].Human }

// EventBus exposes the bus for observers to subscribe on.
func (g *Game) EventBus() *event.Bus { return g.bus }

func (g *Game) findUnit(id entity.ID) *entity.Unit {
	for _, u := range g.units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (g *Game) findCity(id entity.ID) *entity.City {
	for _, c := range g.cities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (g *Game) findPlayer(id int) *entity.Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// cityAt returns the city occupying pos, if any.
func (g *Game) cityAt(pos world.Position) *entity.City {
	pos = pos.Normalize(g.worldMap.Width, g.worldMap.Height)
	for _, c := range g.cities {
		if c.Position == pos {
			return c
		}
	}
	return nil
}

// unitsAt returns all units standing on pos.
func (g *Game) unitsAt(pos world.Position) []*entity.Unit {
	pos = pos.Normalize(g.worldMap.Width, g.worldMap.Height)
	var out []*entity.Unit
	for _, u := range g.units {
		if u.Position == pos {
			out = append(out, u)
		}
	}
	return out
}

// removeUnit deletes a unit from the game and from the activation queue.
func (g *Game) removeUnit(id entity.ID) {
	for i, u := range g.units {
		if u.ID == id {
			g.units = append(g.units[:i], g.units[i+1:]...)
			break
		}
	}
	g.removeFromQueue(id)
}
