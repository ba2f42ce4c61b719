package entity

import (
	"testing"

	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

func TestNewUnit_FullStrength(t *testing.T) {
	u := NewUnit(rules.Cavalry, 3, world.Position{X: 5, Y: 7})
	stats := rules.UnitInfo(rules.Cavalry)
	if u.ID == "" {
		t.Error("unit must get an identifier")
	}
	if u.MovementPoints != float64(stats.Movement) || u.MaxMovementPoints != float64(stats.Movement) {
		t.Errorf("movement = %v/%v, want %d", u.MovementPoints, u.MaxMovementPoints, stats.Movement)
	}
	if u.Health != stats.Health {
		t.Errorf("health = %d, want %d", u.Health, stats.Health)
	}
	if u.Veteran {
		t.Error("new units are not veterans")
	}
}

func TestUnit_IDsUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		u := NewUnit(rules.Militia, 0, world.Position{})
		if seen[u.ID] {
			t.Fatalf("duplicate id %v", u.ID)
		}
		seen[u.ID] = true
	}
}

func TestUnit_BusyStates(t *testing.T) {
	tests := []struct {
		name string
		set  func(u *Unit)
		want bool
	}{
		{"mobile", func(u *Unit) {}, false},
		{"fortified", func(u *Unit) { u.Fortified = true }, true},
		{"fortifying", func(u *Unit) { u.Fortifying = true }, true},
		{"sleeping", func(u *Unit) { u.Sleeping = true }, true},
		{"building road", func(u *Unit) { u.BuildingRoad = true }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUnit(rules.Phalanx, 0, world.Position{})
			tt.set(u)
			if u.Busy() != tt.want {
				t.Errorf("Busy() = %v, want %v", u.Busy(), tt.want)
			}
		})
	}
}

func TestUnit_TakeDamageWakesAndClamps(t *testing.T) {
	u := NewUnit(rules.Phalanx, 0, world.Position{})
	u.Fortified = true
	u.Sleeping = true

	u.TakeDamage(30)
	if u.Fortified || u.Sleeping {
		t.Error("damage must wake the unit and clear fortification")
	}
	if u.Health != u.MaxHealth-30 {
		t.Errorf("health = %d, want %d", u.Health, u.MaxHealth-30)
	}

	u.TakeDamage(1000)
	if u.Health != 0 {
		t.Errorf("health = %d, want clamp at 0", u.Health)
	}
	if u.Alive() {
		t.Error("a unit at 0 health is dead")
	}
}

func TestUnit_VeteranPromotionAt100(t *testing.T) {
	u := NewUnit(rules.Legion, 0, world.Position{})
	u.GainExperience(99)
	if u.Veteran {
		t.Error("promoted below the threshold")
	}
	u.GainExperience(1)
	if !u.Veteran {
		t.Error("100 experience must promote to veteran")
	}
}

func TestUnit_CloneIndependent(t *testing.T) {
	u := NewUnit(rules.Militia, 0, world.Position{X: 1, Y: 2})
	dup := u.Clone()
	dup.Health = 5
	dup.Position.X = 9
	if u.Health == 5 || u.Position.X == 9 {
		t.Error("clone shares state with the original")
	}
}

func TestCity_FoodStorageCapacityLadder(t *testing.T) {
	tests := []struct {
		pop  int
		want int
	}{
		{1, 20},
		{2, 30},
		{3, 40},
		{4, 50},
		{10, 110},
	}
	for _, tt := range tests {
		if got := FoodStorageCapacity(tt.pop); got != tt.want {
			t.Errorf("FoodStorageCapacity(%d) = %d, want %d", tt.pop, got, tt.want)
		}
	}
}

func TestCity_BuildingSet(t *testing.T) {
	c := NewCity("Thebes", 1, world.Position{X: 4, Y: 4})
	if c.Population != 1 {
		t.Fatalf("new city population = %d, want 1", c.Population)
	}
	if c.HasBuilding(rules.Granary) {
		t.Fatal("new city has no buildings")
	}
	c.AddBuilding(rules.Granary)
	c.AddBuilding(rules.Granary) // idempotent
	if !c.HasBuilding(rules.Granary) {
		t.Error("granary not recorded")
	}
	if len(c.Buildings) != 1 {
		t.Errorf("buildings = %d, want 1 (no duplicates)", len(c.Buildings))
	}
}

func TestCity_CloneIndependent(t *testing.T) {
	c := NewCity("Ur", 0, world.Position{})
	c.AddBuilding(rules.Barracks)
	dup := c.Clone()
	dup.AddBuilding(rules.Granary)
	dup.Population = 7
	if c.HasBuilding(rules.Granary) || c.Population == 7 {
		t.Error("clone shares state with the original")
	}
}

func TestPlayer_KnowsTreatsNoTechAsKnown(t *testing.T) {
	p := NewPlayer(0, "Hammurabi", CivBabylon, "#ccc", false)
	if !p.Knows(rules.NoTech) {
		t.Error("the empty tech requirement is always satisfied")
	}
	if p.Knows(rules.Alphabet) {
		t.Error("new players know nothing")
	}
	p.Technologies[rules.Alphabet] = true
	if !p.Knows(rules.Alphabet) {
		t.Error("researched tech not reported")
	}
}

func TestPlayer_NextCityNameWalksListThenNumbers(t *testing.T) {
	p := NewPlayer(0, "Caesar", CivRomans, "#f00", true)
	if got := p.NextCityName(); got != "Rome" {
		t.Errorf("first name = %q, want Rome", got)
	}
	if got := p.NextCityName(); got != "Capua" {
		t.Errorf("second name = %q, want Capua", got)
	}
	for i := 0; i < 4; i++ {
		p.NextCityName()
	}
	if got := p.NextCityName(); got != "romans-city-1" {
		t.Errorf("post-list name = %q, want romans-city-1", got)
	}
	if got := p.NextCityName(); got != "romans-city-2" {
		t.Errorf("second post-list name = %q, want romans-city-2", got)
	}
}

func TestPlayer_NextCityNameSkipsManuallyUsed(t *testing.T) {
	p := NewPlayer(0, "Caesar", CivRomans, "#f00", true)
	p.UsedCityNames["Rome"] = true
	if got := p.NextCityName(); got != "Capua" {
		t.Errorf("name = %q, want Capua (Rome taken)", got)
	}
}

func TestPlayer_CloneIndependent(t *testing.T) {
	p := NewPlayer(0, "Cleopatra", CivEgyptians, "#00f", false)
	p.Technologies[rules.Pottery] = true
	dup := p.Clone()
	dup.Technologies[rules.Alphabet] = true
	dup.UsedCityNames["Thebes"] = true
	dup.Gold = 500
	if p.Knows(rules.Alphabet) || p.UsedCityNames["Thebes"] || p.Gold == 500 {
		t.Error("clone shares state with the original")
	}
}
