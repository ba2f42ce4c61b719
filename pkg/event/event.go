// Package event provides the publish/subscribe bus connecting the game
// engine to its observers (UI bridge, AI, logging). Publishing is
// fire-and-forget: handlers run synchronously in subscription order and
// their return is ignored.
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Domain event types emitted by the engine.
const (
	GameInitialized           Type = "game_initialized"
	UnitMoved                 Type = "unit_moved"
	CombatResolved            Type = "combat_resolved"
	CityFounded               Type = "city_founded"
	CityProductionChanged     Type = "city_production_changed"
	CityGrew                  Type = "city_grew"
	TechnologyResearched      Type = "technology_researched"
	UnitFortified             Type = "unit_fortified"
	TerrainImproved           Type = "terrain_improved"
	TurnEnded                 Type = "turn_ended"
	AITurnStarted             Type = "ai_turn_started"
	AITurnEnded               Type = "ai_turn_ended"
	HumanTurnStarted          Type = "human_turn_started"
	UnitSelected              Type = "unit_selected"
	UnitDeselected            Type = "unit_deselected"
	EndOfTurn                 Type = "end_of_turn"
	ResearchSelectionRequired Type = "research_selection_required"
	GovernmentChanged         Type = "government_changed"
)

// AllTypes lists every event type the engine emits.
func AllTypes() []Type {
	return []Type{
		GameInitialized, UnitMoved, CombatResolved, CityFounded,
		CityProductionChanged, CityGrew, TechnologyResearched, UnitFortified,
		TerrainImproved, TurnEnded, AITurnStarted, AITurnEnded,
		HumanTurnStarted, UnitSelected, UnitDeselected, EndOfTurn,
		ResearchSelectionRequired, GovernmentChanged,
	}
}

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers a handler for every event type the engine emits.
// Used by the bridge, which forwards everything to connected clients.
func (b *Bus) SubscribeAll(handler Handler) {
	for _, t := range AllTypes() {
		b.Subscribe(t, handler)
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	// Call each handler
	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// UnitEvent carries information about unit-related events.
type UnitEvent struct {
	BaseEvent
	UnitID   string
	PlayerID int
	X, Y     int
}

// NewUnitEvent creates a new unit event.
func NewUnitEvent(eventType Type, source interface{}, unitID string, playerID, x, y int) *UnitEvent {
	return &UnitEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		UnitID:    unitID,
		PlayerID:  playerID,
		X:         x,
		Y:         y,
	}
}

// CityEvent carries information about city-related events.
type CityEvent struct {
	BaseEvent
	CityID   string
	CityName string
	PlayerID int
}

// NewCityEvent creates a new city event.
func NewCityEvent(eventType Type, source interface{}, cityID, cityName string, playerID int) *CityEvent {
	return &CityEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		CityID:    cityID,
		CityName:  cityName,
		PlayerID:  playerID,
	}
}

// CombatEvent carries the outcome of a combat resolution.
type CombatEvent struct {
	BaseEvent
	AttackerID       string
	DefenderID       string
	AttackerSurvived bool
	DefenderSurvived bool
}

// NewCombatEvent creates a new combat event.
func NewCombatEvent(source interface{}, attackerID, defenderID string, attackerSurvived, defenderSurvived bool) *CombatEvent {
	return &CombatEvent{
		BaseEvent:        BaseEvent{EventType: CombatResolved, Source: source},
		AttackerID:       attackerID,
		DefenderID:       defenderID,
		AttackerSurvived: attackerSurvived,
		DefenderSurvived: defenderSurvived,
	}
}

// PlayerEvent carries information about player-scoped events (turn
// transitions, research, government changes).
type PlayerEvent struct {
	BaseEvent
	PlayerID int
	Detail   string
}

// NewPlayerEvent creates a new player event.
func NewPlayerEvent(eventType Type, source interface{}, playerID int, detail string) *PlayerEvent {
	return &PlayerEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		PlayerID:  playerID,
		Detail:    detail,
	}
}

// TurnEvent carries information about a completed turn.
type TurnEvent struct {
	BaseEvent
	Turn          int
	CurrentPlayer int
}

// NewTurnEvent creates a new turn event.
func NewTurnEvent(source interface{}, turn, currentPlayer int) *TurnEvent {
	return &TurnEvent{
		BaseEvent:     BaseEvent{EventType: TurnEnded, Source: source},
		Turn:          turn,
		CurrentPlayer: currentPlayer,
	}
}
