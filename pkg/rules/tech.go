package rules

// TechType identifies a technology in the research tree.
type TechType int

const (
	NoTech TechType = iota
	Alphabet
	BronzeWorking
	CeremonialBurial
	Pottery
	Masonry
	TheWheel
	HorsebackRiding
	IronWorking
	Writing
	CodeOfLaws
	Currency
	Mathematics
	MapMaking
	Mysticism
	Astronomy
	Monarchy
	Trade
	Construction
	Literacy
	TheRepublic
	Seafaring
	Chivalry
	Feudalism
	Navigation
	Philosophy
	University
	Banking
	Gunpowder
	Magnetism
	Metallurgy
	Sanitation
	TheoryOfGravity
	Democracy
	Conscription
	SteamEngine
	RailRoad
	Industrialization
	Corporation
	Electricity
	Communism
	Flight
	AdvancedFlight
	AtomicTheory
	NuclearFission
	NuclearPower
)

// TechStats is the catalog entry for a technology.
type TechStats struct {
	Name          string
	Cost          int // research points to complete
	Prerequisites []TechType
}

var techTable = map[TechType]TechStats{
	Alphabet:          {Name: "Alphabet", Cost: 10},
	BronzeWorking:     {Name: "Bronze Working", Cost: 10},
	CeremonialBurial:  {Name: "Ceremonial Burial", Cost: 10},
	Pottery:           {Name: "Pottery", Cost: 10},
	Masonry:           {Name: "Masonry", Cost: 10},
	TheWheel:          {Name: "The Wheel", Cost: 10},
	HorsebackRiding:   {Name: "Horseback Riding", Cost: 10},
	IronWorking:       {Name: "Iron Working", Cost: 12, Prerequisites: []TechType{BronzeWorking}},
	Writing:           {Name: "Writing", Cost: 12, Prerequisites: []TechType{Alphabet}},
	CodeOfLaws:        {Name: "Code of Laws", Cost: 12, Prerequisites: []TechType{Alphabet}},
	Currency:          {Name: "Currency", Cost: 12, Prerequisites: []TechType{BronzeWorking}},
	Mathematics:       {Name: "Mathematics", Cost: 14, Prerequisites: []TechType{Alphabet, Masonry}},
	MapMaking:         {Name: "Map Making", Cost: 12, Prerequisites: []TechType{Alphabet}},
	Mysticism:         {Name: "Mysticism", Cost: 12, Prerequisites: []TechType{CeremonialBurial}},
	Astronomy:         {Name: "Astronomy", Cost: 16, Prerequisites: []TechType{Mysticism, Mathematics}},
	Monarchy:          {Name: "Monarchy", Cost: 16, Prerequisites: []TechType{CeremonialBurial, CodeOfLaws}},
	Trade:             {Name: "Trade", Cost: 16, Prerequisites: []TechType{CodeOfLaws, Currency, Writing}},
	Construction:      {Name: "Construction", Cost: 16, Prerequisites: []TechType{Pottery, Currency}},
	Literacy:          {Name: "Literacy", Cost: 16, Prerequisites: []TechType{Writing, CodeOfLaws}},
	TheRepublic:       {Name: "The Republic", Cost: 20, Prerequisites: []TechType{CodeOfLaws, Literacy}},
	Seafaring:         {Name: "Seafaring", Cost: 16, Prerequisites: []TechType{Pottery, MapMaking}},
	Chivalry:          {Name: "Chivalry", Cost: 20, Prerequisites: []TechType{Feudalism, HorsebackRiding}},
	Feudalism:         {Name: "Feudalism", Cost: 18, Prerequisites: []TechType{Masonry, Monarchy}},
	Navigation:        {Name: "Navigation", Cost: 20, Prerequisites: []TechType{Seafaring, Astronomy}},
	Philosophy:        {Name: "Philosophy", Cost: 18, Prerequisites: []TechType{Mysticism, Literacy}},
	University:        {Name: "University", Cost: 22, Prerequisites: []TechType{Philosophy, Astronomy}},
	Banking:           {Name: "Banking", Cost: 22, Prerequisites: []TechType{Trade, TheRepublic}},
	Gunpowder:         {Name: "Gunpowder", Cost: 24, Prerequisites: []TechType{IronWorking, Construction}},
	Magnetism:         {Name: "Magnetism", Cost: 22, Prerequisites: []TechType{IronWorking, Navigation}},
	Metallurgy:        {Name: "Metallurgy", Cost: 24, Prerequisites: []TechType{Gunpowder, University}},
	Sanitation:        {Name: "Sanitation", Cost: 26, Prerequisites: []TechType{Construction, Trade}},
	TheoryOfGravity:   {Name: "Theory of Gravity", Cost: 26, Prerequisites: []TechType{Astronomy, University}},
	Democracy:         {Name: "Democracy", Cost: 28, Prerequisites: []TechType{Philosophy, Literacy}},
	Conscription:      {Name: "Conscription", Cost: 28, Prerequisites: []TechType{Democracy, Metallurgy}},
	SteamEngine:       {Name: "Steam Engine", Cost: 28, Prerequisites: []TechType{TheoryOfGravity, Magnetism}},
	RailRoad:          {Name: "Railroad", Cost: 30, Prerequisites: []TechType{SteamEngine, Banking}},
	Industrialization: {Name: "Industrialization", Cost: 32, Prerequisites: []TechType{RailRoad, Banking}},
	Corporation:       {Name: "Corporation", Cost: 32, Prerequisites: []TechType{Industrialization}},
	Electricity:       {Name: "Electricity", Cost: 32, Prerequisites: []TechType{Metallurgy, TheoryOfGravity}},
	Communism:         {Name: "Communism", Cost: 32, Prerequisites: []TechType{Philosophy, Industrialization}},
	Flight:            {Name: "Flight", Cost: 34, Prerequisites: []TechType{Electricity, TheoryOfGravity}},
	AdvancedFlight:    {Name: "Advanced Flight", Cost: 38, Prerequisites: []TechType{Flight, Electricity}},
	AtomicTheory:      {Name: "Atomic Theory", Cost: 34, Prerequisites: []TechType{TheoryOfGravity, Electricity}},
	NuclearFission:    {Name: "Nuclear Fission", Cost: 40, Prerequisites: []TechType{AtomicTheory, Corporation}},
	NuclearPower:      {Name: "Nuclear Power", Cost: 42, Prerequisites: []TechType{NuclearFission, Electricity}},
}

// TechInfo returns the catalog entry for a technology. Unknown values are a
// programming error and panic.
func TechInfo(t TechType) TechStats {
	stats, ok := techTable[t]
	if !ok {
		panic("rules: unknown technology")
	}
	return stats
}

// AllTechs lists every researchable technology.
func AllTechs() []TechType {
	techs := make([]TechType, 0, len(techTable))
	for t := Alphabet; t <= NuclearPower; t++ {
		techs = append(techs, t)
	}
	return techs
}

// CanResearch reports whether every prerequisite of tech is in known and the
// tech itself is not yet known.
func CanResearch(tech TechType, known map[TechType]bool) bool {
	if tech == NoTech || known[tech] {
		return false
	}
	for _, prereq := range TechInfo(tech).Prerequisites {
		if !known[prereq] {
			return false
		}
	}
	return true
}

func (t TechType) String() string {
	if t == NoTech {
		return "None"
	}
	return TechInfo(t).Name
}
