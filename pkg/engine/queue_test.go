package engine

import (
	"context"
	"testing"

	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/world"
)

func queueUnits(n int) ([]*entity.Unit, []entity.ID) {
	units := make([]*entity.Unit, n)
	ids := make([]entity.ID, n)
	for i := range units {
		units[i] = entity.NewUnit(rules.Militia, 0, world.Position{X: i, Y: 0})
		ids[i] = units[i].ID
	}
	return units, ids
}

func TestUnitQueue_CyclesWithWraparound(t *testing.T) {
	units, ids := queueUnits(3)
	q := NewUnitQueue()
	q.Rebuild(units)

	if q.Current() != ids[0] {
		t.Fatalf("current = %v, want first unit", q.Current())
	}
	if q.Next() != ids[1] || q.Next() != ids[2] {
		t.Fatal("Next did not walk the queue in order")
	}
	if q.Next() != ids[0] {
		t.Error("Next past the end must wrap to the front")
	}
	if q.Previous() != ids[2] {
		t.Error("Previous past the front must wrap to the back")
	}
}

func TestUnitQueue_RebuildSkipsBusyAndSpent(t *testing.T) {
	units, ids := queueUnits(4)
	units[1].Fortified = true
	units[2].Sleeping = true
	units[3].MovementPoints = 0

	q := NewUnitQueue()
	q.Rebuild(units)
	if q.Len() != 1 {
		t.Fatalf("queue length = %d, want 1", q.Len())
	}
	if q.Current() != ids[0] {
		t.Error("the one ready unit should be current")
	}
}

func TestUnitQueue_RemoveKeepsCursorValid(t *testing.T) {
	units, ids := queueUnits(3)
	q := NewUnitQueue()
	q.Rebuild(units)
	q.Next() // cursor on ids[1]

	// Removing before the cursor shifts it back so the same unit stays
	// current.
	q.Remove(ids[0])
	if q.Current() != ids[1] {
		t.Errorf("current = %v, want %v after removing an earlier entry", q.Current(), ids[1])
	}

	// Removing the current, last entry wraps the cursor to the front.
	q.Next() // cursor on ids[2]
	q.Remove(ids[2])
	if q.Current() != ids[1] {
		t.Errorf("current = %v, want %v after removing the tail", q.Current(), ids[1])
	}

	if !q.Remove(ids[1]) {
		t.Error("removing the final entry must report the queue emptied")
	}
	if q.Current() != "" {
		t.Error("empty queue must report no current unit")
	}
}

func TestUnitQueue_InsertAtCursorSelectsImmediately(t *testing.T) {
	units, ids := queueUnits(3)
	q := NewUnitQueue()
	q.Rebuild(units[:2])
	q.Next() // cursor on ids[1]

	q.InsertAtCursor(ids[2])
	if q.Current() != ids[2] {
		t.Errorf("current = %v, want the inserted unit", q.Current())
	}
	if q.Next() != ids[1] {
		t.Error("the displaced unit should follow the inserted one")
	}

	// Inserting an already-queued unit is a no-op.
	q.InsertAtCursor(ids[1])
	if q.Len() != 3 {
		t.Errorf("queue length = %d, want 3 (no duplicate)", q.Len())
	}
}

func TestSkipUnit_SpendsQueueSlotNotMovement(t *testing.T) {
	g := newTestGame(t)
	a := g.addUnit(t, rules.Militia, 0, 10, 10)
	b := g.addUnit(t, rules.Militia, 0, 12, 10)
	g.setSelected(a.ID)
	for g.queue.Current() != a.ID {
		g.queue.Next()
	}

	g.SkipUnit()
	if g.queue.Contains(a.ID) {
		t.Error("skipped unit must leave the queue")
	}
	if a.MovementPoints != a.MaxMovementPoints {
		t.Error("skipping must not spend movement")
	}
	if g.SelectedUnit() != b.ID {
		t.Errorf("selection = %v, want the next queued unit", g.SelectedUnit())
	}
}

func TestEndOfTurnSignal_EmittedWhenHumanQueueDrains(t *testing.T) {
	g := newTestGame(t)
	u := g.addUnit(t, rules.Militia, 0, 10, 10)

	var signals int
	g.EventBus().Subscribe(event.EndOfTurn, func(event.Event) { signals++ })

	turnBefore := g.Turn()
	if !g.FortifyUnit(u.ID) {
		t.Fatal("fortify should succeed")
	}
	if signals != 1 {
		t.Errorf("end-of-turn signals = %d, want 1", signals)
	}
	if g.Turn() != turnBefore {
		t.Error("the signal is advisory; it must not advance the turn")
	}
}

func TestEndOfTurnSignal_EmittedWhenQueueEmptyAtTurnStart(t *testing.T) {
	g := newTestGame(t)
	u := g.addUnit(t, rules.Militia, 0, 10, 10)
	if !g.FortifyUnit(u.ID) {
		t.Fatal("fortify should succeed")
	}

	// The unit stays fortified across the boundary, so the rebuilt queue is
	// empty the moment the next turn starts.
	var signals int
	g.EventBus().Subscribe(event.EndOfTurn, func(event.Event) { signals++ })
	g.EndTurn(context.Background())
	if signals != 1 {
		t.Errorf("end-of-turn signals = %d, want 1 at the start of an all-fortified turn", signals)
	}
}

func TestWakeUnit_ReinsertsAtCursor(t *testing.T) {
	g := newTestGame(t)
	sleeper := g.addUnit(t, rules.Militia, 0, 10, 10)
	g.addUnit(t, rules.Militia, 0, 12, 10)

	if !g.SleepUnit(sleeper.ID) {
		t.Fatal("sleep should succeed")
	}
	if g.queue.Contains(sleeper.ID) {
		t.Fatal("sleeping unit must leave the queue")
	}

	if !g.WakeUnit(sleeper.ID) {
		t.Fatal("wake should succeed")
	}
	if g.SelectedUnit() != sleeper.ID {
		t.Error("woken unit must become the selection")
	}
	if sleeper.MovementPoints != sleeper.MaxMovementPoints {
		t.Error("waking must restore full movement")
	}
}

func TestResearch_AccruesAndCompletesAtTurnBoundary(t *testing.T) {
	g := newTestGame(t)
	settler := g.addUnit(t, rules.Settlers, 0, 10, 10)
	if g.FoundCity(settler.ID, "") == nil {
		t.Fatal("founding should succeed")
	}
	p := g.players[0]

	if g.SetCurrentResearch(p.ID, rules.Monarchy) {
		t.Error("research with unmet prerequisites must be rejected")
	}
	if !g.SetCurrentResearch(p.ID, rules.Alphabet) {
		t.Fatal("alphabet has no prerequisites and must be selectable")
	}

	var researched []string
	g.EventBus().Subscribe(event.TechnologyResearched, func(e event.Event) {
		researched = append(researched, e.(*event.PlayerEvent).Detail)
	})

	cost := rules.TechInfo(rules.Alphabet).Cost
	for i := 0; i < cost*4 && !p.Knows(rules.Alphabet); i++ {
		g.EndTurn(context.Background())
	}
	if !p.Knows(rules.Alphabet) {
		t.Fatal("research never completed")
	}
	if len(researched) != 1 || researched[0] != rules.Alphabet.String() {
		t.Errorf("researched events = %v, want one alphabet completion", researched)
	}
	if p.CurrentResearch != rules.NoTech {
		t.Error("completion must clear the research target")
	}
}

func TestRevolution_AnarchyThenNewGovernment(t *testing.T) {
	g := newTestGame(t)
	p := g.players[0]
	p.Technologies[rules.CodeOfLaws] = true
	p.Technologies[rules.Alphabet] = true
	p.Technologies[rules.CeremonialBurial] = true
	p.Technologies[rules.Monarchy] = true

	if g.ChangeGovernment(p.ID, rules.MonarchyGov) {
		t.Error("a government change without a revolution must be rejected")
	}
	if !g.StartRevolution(p.ID) {
		t.Fatal("revolution should start")
	}
	if p.Government != rules.Anarchy {
		t.Fatal("revolution must install anarchy")
	}
	if g.StartRevolution(p.ID) {
		t.Error("a second revolution during anarchy must be rejected")
	}
	if g.ChangeGovernment(p.ID, rules.MonarchyGov) {
		t.Error("government change during the anarchy period must be rejected")
	}

	for i := 0; i < rules.RevolutionTurns; i++ {
		g.EndTurn(context.Background())
	}
	if g.ChangeGovernment(p.ID, rules.DemocracyGov) {
		t.Error("democracy without its technology must be rejected")
	}
	if !g.ChangeGovernment(p.ID, rules.MonarchyGov) {
		t.Fatal("monarchy should be available after the revolution")
	}
	if p.Government != rules.MonarchyGov {
		t.Errorf("government = %v, want monarchy", p.Government)
	}
}

func TestBuildImprovement_TerrainRules(t *testing.T) {
	g := newTestGame(t)
	g.worldMap.Tiles[10][11].Terrain = rules.Hills
	g.worldMap.Tiles[10][12].Terrain = rules.Swamp

	tests := []struct {
		name  string
		x     int
		build func(id entity.ID) bool
		want  bool
	}{
		{"irrigation on grassland", 10, g.BuildIrrigation, true},
		{"mine on grassland", 10, g.BuildMine, false},
		{"mine on hills", 11, g.BuildMine, true},
		{"irrigation on swamp", 12, g.BuildIrrigation, false},
		{"road on swamp", 12, g.BuildRoad, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := g.addUnit(t, rules.Settlers, 0, tt.x, 10)
			if got := tt.build(u.ID); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildRoad_RoughTerrainTakesExtraTurn(t *testing.T) {
	g := newTestGame(t)
	g.worldMap.Tiles[10][10].Terrain = rules.Forest
	u := g.addUnit(t, rules.Settlers, 0, 10, 10)

	if !g.BuildRoad(u.ID) {
		t.Fatal("road order on forest should be accepted")
	}
	tile := g.worldMap.TileAt(world.Position{X: 10, Y: 10})
	if tile.HasImprovement(world.Road) {
		t.Fatal("forest road must not finish immediately")
	}
	g.EndTurn(context.Background())
	if !tile.HasImprovement(world.Road) {
		t.Error("forest road should finish at the turn boundary")
	}
}

func TestBuildRoad_NonSettlerRejected(t *testing.T) {
	g := newTestGame(t)
	u := g.addUnit(t, rules.Militia, 0, 10, 10)
	if g.BuildRoad(u.ID) {
		t.Error("only settler-type units may build improvements")
	}
}
