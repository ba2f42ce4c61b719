package rules

// UnitType identifies a unit kind in the unit catalog.
type UnitType int

const (
	Settlers UnitType = iota
	Militia
	Phalanx
	Legion
	Cavalry
	Chariot
	Catapult
	Knights
	Musketeers
	Riflemen
	Cannon
	Trireme
	Sail
	Frigate
	Transport
	Ironclad
	Fighter
	Bomber
	Diplomat
	Caravan
)

// UnitCategory is the movement-domain tag for a unit type. Movement legality
// and combat dispatch on this tag rather than on a type hierarchy.
type UnitCategory int

const (
	CategoryLand UnitCategory = iota
	CategoryNaval
	CategoryAir
	CategorySpecial
)

// UnitStats is the catalog entry for a unit type.
type UnitStats struct {
	Name          string
	Category      UnitCategory
	Attack        int
	Defense       int
	Movement      int
	Health        int
	Cost          int // production points
	CanAttack     bool
	CanFoundCity  bool
	CanBuildRoads bool
	CargoCapacity int      // naval transports only
	Requires      TechType // NoTech if available from the start
}

var unitTable = map[UnitType]UnitStats{
	Settlers:   {Name: "Settlers", Category: CategorySpecial, Attack: 0, Defense: 1, Movement: 1, Health: 20, Cost: 40, CanFoundCity: true, CanBuildRoads: true, Requires: NoTech},
	Militia:    {Name: "Militia", Category: CategoryLand, Attack: 1, Defense: 1, Movement: 1, Health: 100, Cost: 10, CanAttack: true, Requires: NoTech},
	Phalanx:    {Name: "Phalanx", Category: CategoryLand, Attack: 1, Defense: 2, Movement: 1, Health: 100, Cost: 20, CanAttack: true, Requires: BronzeWorking},
	Legion:     {Name: "Legion", Category: CategoryLand, Attack: 3, Defense: 1, Movement: 1, Health: 100, Cost: 20, CanAttack: true, Requires: IronWorking},
	Cavalry:    {Name: "Cavalry", Category: CategoryLand, Attack: 2, Defense: 1, Movement: 2, Health: 100, Cost: 20, CanAttack: true, Requires: HorsebackRiding},
	Chariot:    {Name: "Chariot", Category: CategoryLand, Attack: 4, Defense: 1, Movement: 2, Health: 100, Cost: 40, CanAttack: true, Requires: TheWheel},
	Catapult:   {Name: "Catapult", Category: CategoryLand, Attack: 6, Defense: 1, Movement: 1, Health: 100, Cost: 40, CanAttack: true, Requires: Mathematics},
	Knights:    {Name: "Knights", Category: CategoryLand, Attack: 4, Defense: 2, Movement: 2, Health: 100, Cost: 40, CanAttack: true, Requires: Chivalry},
	Musketeers: {Name: "Musketeers", Category: CategoryLand, Attack: 2, Defense: 3, Movement: 1, Health: 100, Cost: 30, CanAttack: true, Requires: Gunpowder},
	Riflemen:   {Name: "Riflemen", Category: CategoryLand, Attack: 3, Defense: 5, Movement: 1, Health: 100, Cost: 30, CanAttack: true, Requires: Conscription},
	Cannon:     {Name: "Cannon", Category: CategoryLand, Attack: 8, Defense: 1, Movement: 1, Health: 100, Cost: 40, CanAttack: true, Requires: Metallurgy},
	Trireme:    {Name: "Trireme", Category: CategoryNaval, Attack: 1, Defense: 0, Movement: 3, Health: 100, Cost: 40, CanAttack: true, CargoCapacity: 2, Requires: MapMaking},
	Sail:       {Name: "Sail", Category: CategoryNaval, Attack: 1, Defense: 1, Movement: 3, Health: 100, Cost: 40, CanAttack: true, CargoCapacity: 3, Requires: Navigation},
	Frigate:    {Name: "Frigate", Category: CategoryNaval, Attack: 2, Defense: 2, Movement: 3, Health: 100, Cost: 40, CanAttack: true, CargoCapacity: 4, Requires: Magnetism},
	Transport:  {Name: "Transport", Category: CategoryNaval, Attack: 0, Defense: 3, Movement: 4, Health: 100, Cost: 50, CargoCapacity: 8, Requires: Industrialization},
	Ironclad:   {Name: "Ironclad", Category: CategoryNaval, Attack: 4, Defense: 4, Movement: 4, Health: 100, Cost: 60, CanAttack: true, Requires: SteamEngine},
	Fighter:    {Name: "Fighter", Category: CategoryAir, Attack: 4, Defense: 2, Movement: 10, Health: 100, Cost: 60, CanAttack: true, Requires: Flight},
	Bomber:     {Name: "Bomber", Category: CategoryAir, Attack: 12, Defense: 1, Movement: 8, Health: 100, Cost: 120, CanAttack: true, Requires: AdvancedFlight},
	Diplomat:   {Name: "Diplomat", Category: CategorySpecial, Attack: 0, Defense: 1, Movement: 2, Health: 50, Cost: 30, Requires: Writing},
	Caravan:    {Name: "Caravan", Category: CategorySpecial, Attack: 0, Defense: 1, Movement: 1, Health: 50, Cost: 50, Requires: Trade},
}

// UnitInfo returns the catalog entry for a unit type. Unknown values are a
// programming error and panic.
func UnitInfo(t UnitType) UnitStats {
	stats, ok := unitTable[t]
	if !ok {
		panic("rules: unknown unit type")
	}
	return stats
}

// AllUnitTypes lists every unit type in catalog order (ascending cost within
// era, used by the cheapest-land-unit auto-reorder rule as a stable scan).
func AllUnitTypes() []UnitType {
	return []UnitType{
		Settlers, Militia, Phalanx, Legion, Cavalry, Chariot, Catapult,
		Knights, Musketeers, Riflemen, Cannon, Trireme, Sail, Frigate,
		Transport, Ironclad, Fighter, Bomber, Diplomat, Caravan,
	}
}

// CheapestLandUnit returns the least expensive attack-capable land unit
// available to a player knowing the given technologies, and false when none
// is available.
func CheapestLandUnit(known map[TechType]bool) (UnitType, bool) {
	best := Militia
	bestCost := -1
	for _, ut := range AllUnitTypes() {
		stats := UnitInfo(ut)
		if stats.Category != CategoryLand {
			continue
		}
		if stats.Requires != NoTech && !known[stats.Requires] {
			continue
		}
		if bestCost < 0 || stats.Cost < bestCost {
			best, bestCost = ut, stats.Cost
		}
	}
	return best, bestCost >= 0
}

func (t UnitType) String() string { return UnitInfo(t).Name }
