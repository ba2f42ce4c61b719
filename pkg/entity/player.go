package entity

import (
	"fmt"

	"github.com/opd-ai/go-empire/pkg/rules"
)

// Civilization identifies a playable civilization with its default city
// name list.
type Civilization string

const (
	CivRomans    Civilization = "romans"
	CivEgyptians Civilization = "egyptians"
	CivGreeks    Civilization = "greeks"
	CivBabylon   Civilization = "babylonians"
	CivChinese   Civilization = "chinese"
	CivAztecs    Civilization = "aztecs"
)

var cityNames = map[Civilization][]string{
	CivRomans:    {"Rome", "Capua", "Veii", "Pompeii", "Ravenna", "Neapolis"},
	CivEgyptians: {"Thebes", "Memphis", "Heliopolis", "Elephantine", "Alexandria", "Giza"},
	CivGreeks:    {"Athens", "Sparta", "Corinth", "Delphi", "Argos", "Thermopylae"},
	CivBabylon:   {"Babylon", "Ur", "Nineveh", "Ashur", "Uruk", "Nippur"},
	CivChinese:   {"Beijing", "Shanghai", "Canton", "Nanking", "Chengdu", "Xian"},
	CivAztecs:    {"Tenochtitlan", "Teotihuacan", "Tlatelolco", "Texcoco", "Tlaxcala", "Cholula"},
}

// Player is one participant in the game, human or AI.
type Player struct {
	ID           int
	Name         string
	Civilization Civilization
	Color        string
	Human        bool

	Science int
	Gold    int
	Culture int

	Technologies            map[rules.TechType]bool
	CurrentResearch         rules.TechType // NoTech when nothing selected
	CurrentResearchProgress int

	Government      rules.GovernmentType
	RevolutionTurns int // anarchy turns remaining, 0 when not in revolution

	UsedCityNames map[string]bool
}

// NewPlayer creates a player starting under despotism with no technologies.
func NewPlayer(id int, name string, civ Civilization, color string, human bool) *Player {
	return &Player{
		ID:            id,
		Name:          name,
		Civilization:  civ,
		Color:         color,
		Human:         human,
		Technologies:  make(map[rules.TechType]bool),
		Government:    rules.Despotism,
		UsedCityNames: make(map[string]bool),
	}
}

// Knows reports whether the player has researched the technology.
func (p *Player) Knows(tech rules.TechType) bool {
	return tech == rules.NoTech || p.Technologies[tech]
}

// NextCityName returns the first unused default city name for the player's
// civilization and records it as used. Falls back to a numbered name when the
// list is exhausted.
func (p *Player) NextCityName() string {
	for _, name := range cityNames[p.Civilization] {
		if !p.UsedCityNames[name] {
			p.UsedCityNames[name] = true
			return name
		}
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-city-%d", p.Civilization, i)
		if !p.UsedCityNames[candidate] {
			p.UsedCityNames[candidate] = true
			return candidate
		}
	}
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	dup := *p
	dup.Technologies = make(map[rules.TechType]bool, len(p.Technologies))
	for t := range p.Technologies {
		dup.Technologies[t] = true
	}
	dup.UsedCityNames = make(map[string]bool, len(p.UsedCityNames))
	for n := range p.UsedCityNames {
		dup.UsedCityNames[n] = true
	}
	return &dup
}
