// Package entity defines the mutable game objects: units, cities, and
// players. Entities carry no behavior beyond local state transitions; the
// engine package owns all cross-entity rules.
package entity

import (
	"github.com/google/uuid"

	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

// ID is a unique identifier for a unit or city.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Unit is a single movable piece on the map. A unit is in exactly one of the
// states {mobile, fortified, fortifying, sleeping, building road} at a time;
// entering any non-mobile state zeroes its movement points for the turn.
type Unit struct {
	ID                ID
	Type              rules.UnitType
	Position          world.Position
	MovementPoints    float64
	MaxMovementPoints float64
	Health            int
	MaxHealth         int
	PlayerID          int
	Experience        int
	Veteran           bool

	Fortified           bool
	Fortifying          bool
	FortificationTurns  int
	Sleeping            bool
	BuildingRoad        bool
	RoadBuildingTurns   int
	BuildingImprovement world.ImprovementType
}

// NewUnit creates a unit of the given type at full strength.
func NewUnit(t rules.UnitType, playerID int, pos world.Position) *Unit {
	stats := rules.UnitInfo(t)
	return &Unit{
		ID:                NewID(),
		Type:              t,
		Position:          pos,
		MovementPoints:    float64(stats.Movement),
		MaxMovementPoints: float64(stats.Movement),
		Health:            stats.Health,
		MaxHealth:         stats.Health,
		PlayerID:          playerID,
	}
}

// Stats returns the catalog entry for the unit's type.
func (u *Unit) Stats() rules.UnitStats {
	return rules.UnitInfo(u.Type)
}

// Busy reports whether the unit is in any non-mobile state and therefore
// excluded from the activation queue.
func (u *Unit) Busy() bool {
	return u.Fortified || u.Fortifying || u.Sleeping || u.BuildingRoad
}

// ClearOrders drops fortification and road-building state. Called when the
// unit moves or takes damage (wake-on-disturbance).
func (u *Unit) ClearOrders() {
	u.Fortified = false
	u.Fortifying = false
	u.FortificationTurns = 0
	u.BuildingRoad = false
	u.RoadBuildingTurns = 0
}

// GainExperience adds combat experience and promotes to veteran at 100.
func (u *Unit) GainExperience(amount int) {
	u.Experience += amount
	if u.Experience >= 100 {
		u.Veteran = true
	}
}

// TakeDamage reduces health, clamped at zero, and wakes the unit.
func (u *Unit) TakeDamage(amount int) {
	u.Health -= amount
	if u.Health < 0 {
		u.Health = 0
	}
	u.ClearOrders()
	u.Sleeping = false
}

// Alive reports whether the unit still has health.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// Clone returns a deep copy of the unit.
func (u *Unit) Clone() *Unit {
	dup := *u
	return &dup
}
