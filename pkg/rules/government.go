package rules

// GovernmentType identifies a form of government.
type GovernmentType int

const (
	Despotism GovernmentType = iota
	Anarchy
	MonarchyGov
	RepublicGov
	DemocracyGov
	CommunismGov
)

// GovernmentStats is the catalog entry for a government form.
type GovernmentStats struct {
	Name       string
	Requires   TechType
	ScienceMod float64 // multiplier on city science output
	GoldMod    float64 // multiplier on city gold output
}

var governmentTable = map[GovernmentType]GovernmentStats{
	Despotism:    {Name: "Despotism", Requires: NoTech, ScienceMod: 1.0, GoldMod: 1.0},
	Anarchy:      {Name: "Anarchy", Requires: NoTech, ScienceMod: 0.5, GoldMod: 0.5},
	MonarchyGov:  {Name: "Monarchy", Requires: Monarchy, ScienceMod: 1.0, GoldMod: 1.25},
	RepublicGov:  {Name: "Republic", Requires: TheRepublic, ScienceMod: 1.25, GoldMod: 1.25},
	DemocracyGov: {Name: "Democracy", Requires: Democracy, ScienceMod: 1.5, GoldMod: 1.5},
	CommunismGov: {Name: "Communism", Requires: Communism, ScienceMod: 1.0, GoldMod: 1.0},
}

// RevolutionTurns is how many turns of anarchy a revolution lasts before a
// new government may be chosen.
const RevolutionTurns = 2

// GovernmentInfo returns the catalog entry for a government form. Unknown
// values are a programming error and panic.
func GovernmentInfo(t GovernmentType) GovernmentStats {
	stats, ok := governmentTable[t]
	if !ok {
		panic("rules: unknown government type")
	}
	return stats
}

func (t GovernmentType) String() string { return GovernmentInfo(t).Name }
