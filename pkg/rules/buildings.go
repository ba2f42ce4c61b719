package rules

// BuildingType identifies a city building or wonder.
type BuildingType int

const (
	Barracks BuildingType = iota
	Granary
	Temple
	CityWalls
	Library
	Marketplace
	Courthouse
	Aqueduct
	Colosseum
	UniversityBuilding
	Bank
	Cathedral
	SewerSystem
	Factory
	PowerPlant
	NuclearPlant
	// Wonders
	Pyramids
	GreatLibrary
	Colossus
	GreatWall
	IsaacNewtonsCollege
	DarwinsVoyage
)

// BuildingStats is the catalog entry for a building or wonder.
type BuildingStats struct {
	Name        string
	Cost        int
	Maintenance int
	IsWonder    bool
	Requires    TechType
	// Per-turn output bonuses applied by the city engine.
	FoodBonus       int
	ProductionBonus int
	ScienceBonus    int
	GoldBonus       int
	CultureBonus    int
	// MeltdownRisk is recorded for the Nuclear Plant. The source rule tables
	// ship it as false even though the plant should carry meltdown risk;
	// kept as-is rather than resolved either way.
	MeltdownRisk bool
}

var buildingTable = map[BuildingType]BuildingStats{
	Barracks:           {Name: "Barracks", Cost: 40, Maintenance: 1, Requires: NoTech},
	Granary:            {Name: "Granary", Cost: 60, Maintenance: 1, Requires: Pottery, FoodBonus: 1},
	Temple:             {Name: "Temple", Cost: 40, Maintenance: 1, Requires: CeremonialBurial, CultureBonus: 2},
	CityWalls:          {Name: "City Walls", Cost: 80, Maintenance: 1, Requires: Masonry},
	Library:            {Name: "Library", Cost: 80, Maintenance: 1, Requires: Writing, ScienceBonus: 3},
	Marketplace:        {Name: "Marketplace", Cost: 80, Maintenance: 1, Requires: Currency, GoldBonus: 3},
	Courthouse:         {Name: "Courthouse", Cost: 80, Maintenance: 1, Requires: CodeOfLaws},
	Aqueduct:           {Name: "Aqueduct", Cost: 120, Maintenance: 2, Requires: Construction},
	Colosseum:          {Name: "Colosseum", Cost: 100, Maintenance: 2, Requires: Construction, CultureBonus: 3},
	UniversityBuilding: {Name: "University", Cost: 160, Maintenance: 2, Requires: University, ScienceBonus: 5},
	Bank:               {Name: "Bank", Cost: 120, Maintenance: 2, Requires: Banking, GoldBonus: 5},
	Cathedral:          {Name: "Cathedral", Cost: 160, Maintenance: 2, Requires: Mysticism, CultureBonus: 4},
	SewerSystem:        {Name: "Sewer System", Cost: 120, Maintenance: 2, Requires: Sanitation},
	Factory:            {Name: "Factory", Cost: 200, Maintenance: 4, Requires: Industrialization, ProductionBonus: 5},
	PowerPlant:         {Name: "Power Plant", Cost: 160, Maintenance: 4, Requires: Electricity, ProductionBonus: 3},
	NuclearPlant:       {Name: "Nuclear Plant", Cost: 160, Maintenance: 2, Requires: NuclearPower, ProductionBonus: 5, MeltdownRisk: false},

	Pyramids:            {Name: "Pyramids", Cost: 300, IsWonder: true, Requires: Masonry, ProductionBonus: 2},
	GreatLibrary:        {Name: "Great Library", Cost: 300, IsWonder: true, Requires: Literacy, ScienceBonus: 5},
	Colossus:            {Name: "Colossus", Cost: 200, IsWonder: true, Requires: BronzeWorking, GoldBonus: 4},
	GreatWall:           {Name: "Great Wall", Cost: 300, IsWonder: true, Requires: Construction},
	IsaacNewtonsCollege: {Name: "Isaac Newton's College", Cost: 400, IsWonder: true, Requires: TheoryOfGravity, ScienceBonus: 8},
	DarwinsVoyage:       {Name: "Darwin's Voyage", Cost: 400, IsWonder: true, Requires: RailRoad, ScienceBonus: 6},
}

// BuildingInfo returns the catalog entry for a building. Unknown values are a
// programming error and panic.
func BuildingInfo(t BuildingType) BuildingStats {
	stats, ok := buildingTable[t]
	if !ok {
		panic("rules: unknown building type")
	}
	return stats
}

// AllBuildingTypes lists every building and wonder.
func AllBuildingTypes() []BuildingType {
	types := make([]BuildingType, 0, len(buildingTable))
	for t := Barracks; t <= DarwinsVoyage; t++ {
		types = append(types, t)
	}
	return types
}

func (t BuildingType) String() string { return BuildingInfo(t).Name }
