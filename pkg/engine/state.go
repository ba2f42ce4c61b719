package engine

import (
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/world"
)

// GameState is a read-only snapshot of the full game. Every field is a copy;
// mutating a snapshot never touches engine-owned state.
type GameState struct {
	Turn          int
	CurrentPlayer int
	Phase         GamePhase
	Players       []*entity.Player
	WorldMap      *world.Map
	Units         []*entity.Unit
	Cities        []*entity.City
	Score         map[int]int
	SelectedUnit  entity.ID
}

// GameState returns a snapshot of the current state for observers.
func (g *Game) GameState() *GameState {
	s := &GameState{
		Turn:          g.turn,
		CurrentPlayer: g.players[g.current].ID,
		Phase:         g.phase,
		WorldMap:      g.worldMap.Clone(),
		Score:         make(map[int]int, len(g.score)),
		SelectedUnit:  g.selected,
	}
	for _, p := range g.players {
		s.Players = append(s.Players, p.Clone())
	}
	for _, u := range g.units {
		s.Units = append(s.Units, u.Clone())
	}
	for _, c := range g.cities {
		s.Cities = append(s.Cities, c.Clone())
	}
	for id, score := range g.score {
		s.Score[id] = score
	}
	return s
}

// UnitByID looks a unit up in the snapshot.
func (s *GameState) UnitByID(id entity.ID) *entity.Unit {
	for _, u := range s.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// CityByID looks a city up in the snapshot.
func (s *GameState) CityByID(id entity.ID) *entity.City {
	for _, c := range s.Cities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// PlayerUnits returns the snapshot units belonging to a player.
func (s *GameState) PlayerUnits(playerID int) []*entity.Unit {
	var out []*entity.Unit
	for _, u := range s.Units {
		if u.PlayerID == playerID {
			out = append(out, u)
		}
	}
	return out
}

// PlayerCities returns the snapshot cities belonging to a player.
func (s *GameState) PlayerCities(playerID int) []*entity.City {
	var out []*entity.City
	for _, c := range s.Cities {
		if c.PlayerID == playerID {
			out = append(out, c)
		}
	}
	return out
}
