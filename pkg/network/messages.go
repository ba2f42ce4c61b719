// Package network is the websocket bridge between the engine and its UI.
// The browser (or any client) sends intent messages; the bridge validates
// them, applies them to the engine on a single goroutine, and broadcasts
// state snapshots and domain events to every connected client.
package network

import (
	"encoding/json"
)

// Intent message types accepted from clients.
const (
	MsgMoveUnit         = "move_unit"
	MsgAttackUnit       = "attack_unit"
	MsgFoundCity        = "found_city"
	MsgFortifyUnit      = "fortify_unit"
	MsgSleepUnit        = "sleep_unit"
	MsgWakeUnit         = "wake_unit"
	MsgBuildImprovement = "build_improvement"
	MsgSetProduction    = "set_production"
	MsgSetResearch      = "set_research"
	MsgStartRevolution  = "start_revolution"
	MsgChangeGovernment = "change_government"
	MsgSelectNext       = "select_next_unit"
	MsgSelectPrevious   = "select_previous_unit"
	MsgSkipUnit         = "skip_unit"
	MsgEndTurn          = "end_turn"
	MsgGetState         = "get_state"
)

// Outbound message types.
const (
	MsgState = "state"
	MsgEvent = "event"
	MsgError = "error"
)

// Envelope is the wire frame for all bridge traffic.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MoveUnitIntent moves a unit one tile.
type MoveUnitIntent struct {
	UnitID string `json:"unitId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// AttackIntent attacks a defender with an attacker.
type AttackIntent struct {
	AttackerID string `json:"attackerId"`
	DefenderID string `json:"defenderId"`
}

// FoundCityIntent founds a city with a settler. Name may be empty.
type FoundCityIntent struct {
	UnitID string `json:"unitId"`
	Name   string `json:"name,omitempty"`
}

// UnitIntent addresses a single unit (fortify, sleep, wake, skip).
type UnitIntent struct {
	UnitID string `json:"unitId"`
}

// BuildImprovementIntent orders a tile improvement.
type BuildImprovementIntent struct {
	UnitID      string `json:"unitId"`
	Improvement string `json:"improvement"` // road, irrigation, mine, fortress
}

// SetProductionIntent changes a city's build order.
type SetProductionIntent struct {
	CityID   string `json:"cityId"`
	Kind     string `json:"kind"` // unit, building, wonder
	Unit     int    `json:"unit,omitempty"`
	Building int    `json:"building,omitempty"`
}

// SetResearchIntent selects a player's research target.
type SetResearchIntent struct {
	PlayerID int `json:"playerId"`
	Tech     int `json:"tech"`
}

// PlayerIntent addresses a player (start revolution).
type PlayerIntent struct {
	PlayerID int `json:"playerId"`
}

// GovernmentIntent installs a government after a revolution.
type GovernmentIntent struct {
	PlayerID   int `json:"playerId"`
	Government int `json:"government"`
}

// ResultMessage reports whether an intent was accepted. Rule violations are
// not errors: the envelope type stays MsgEvent-free and Accepted is false.
type ResultMessage struct {
	Intent   string `json:"intent"`
	Accepted bool   `json:"accepted"`
}

// ErrorMessage reports a malformed message (not a rule rejection).
type ErrorMessage struct {
	Reason string `json:"reason"`
}

// EventMessage forwards a domain event to clients.
type EventMessage struct {
	Event  string      `json:"event"`
	Detail interface{} `json:"detail,omitempty"`
}

func mustMarshal(t string, payload interface{}) []byte {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte("{}")
	}
	data, err := json.Marshal(Envelope{Type: t, Payload: raw})
	if err != nil {
		return []byte(`{"type":"error"}`)
	}
	return data
}
