package engine

import (
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
)

// UnitQueue is the per-player worklist of units still able to act this turn.
// The cursor always points at a valid entry while the queue is non-empty.
type UnitQueue struct {
	ids    []entity.ID
	cursor int
}

// NewUnitQueue returns an empty queue.
func NewUnitQueue() *UnitQueue {
	return &UnitQueue{}
}

// Rebuild refills the queue from the given units, keeping those with
// movement left that are not fortified, fortifying, sleeping, or building a
// road. The cursor resets to the front.
func (q *UnitQueue) Rebuild(units []*entity.Unit) {
	q.ids = q.ids[:0]
	q.cursor = 0
	for _, u := range units {
		if u.MovementPoints > 0 && !u.Busy() {
			q.ids = append(q.ids, u.ID)
		}
	}
}

// Len returns the number of queued units.
func (q *UnitQueue) Len() int { return len(q.ids) }

// Current returns the unit at the cursor, or "" when the queue is empty.
func (q *UnitQueue) Current() entity.ID {
	if len(q.ids) == 0 {
		return ""
	}
	return q.ids[q.cursor]
}

// Next advances the cursor with wraparound and returns the new current unit.
func (q *UnitQueue) Next() entity.ID {
	if len(q.ids) == 0 {
		return ""
	}
	q.cursor = (q.cursor + 1) % len(q.ids)
	return q.ids[q.cursor]
}

// Previous steps the cursor back with wraparound and returns the new current
// unit.
func (q *UnitQueue) Previous() entity.ID {
	if len(q.ids) == 0 {
		return ""
	}
	q.cursor = (q.cursor - 1 + len(q.ids)) % len(q.ids)
	return q.ids[q.cursor]
}

// Remove deletes the unit from the queue, keeping the cursor on a valid
// entry. Reports whether the queue became empty as a result.
func (q *UnitQueue) Remove(id entity.ID) bool {
	for i, queued := range q.ids {
		if queued != id {
			continue
		}
		q.ids = append(q.ids[:i], q.ids[i+1:]...)
		if i < q.cursor {
			q.cursor--
		}
		if len(q.ids) > 0 && q.cursor >= len(q.ids) {
			q.cursor = 0
		}
		return len(q.ids) == 0
	}
	return false
}

// InsertAtCursor places the unit at the cursor position so it becomes the
// selected unit. Used when a unit is woken mid-turn.
func (q *UnitQueue) InsertAtCursor(id entity.ID) {
	for _, queued := range q.ids {
		if queued == id {
			return
		}
	}
	if len(q.ids) == 0 {
		q.ids = append(q.ids, id)
		q.cursor = 0
		return
	}
	q.ids = append(q.ids, "")
	copy(q.ids[q.cursor+1:], q.ids[q.cursor:])
	q.ids[q.cursor] = id
}

// Contains reports whether the unit is queued.
func (q *UnitQueue) Contains(id entity.ID) bool {
	for _, queued := range q.ids {
		if queued == id {
			return true
		}
	}
	return false
}

// Engine-side queue operations.

// SelectNextUnit moves the selection to the next queued unit and publishes a
// selection event. Returns the selected unit's ID, or "" on an empty queue.
// If every queued unit happens to be busy the cursor still lands on one so
// the player can interact with it by hand.
func (g *Game) SelectNextUnit() entity.ID {
	id := g.queue.Next()
	g.setSelected(id)
	return id
}

// SelectPreviousUnit moves the selection back one queued unit.
func (g *Game) SelectPreviousUnit() entity.ID {
	id := g.queue.Previous()
	g.setSelected(id)
	return id
}

// SelectedUnit returns the currently selected unit's ID, "" when none.
func (g *Game) SelectedUnit() entity.ID { return g.selected }

// SkipUnit removes the selected unit from the queue for the rest of the turn
// without spending its movement.
func (g *Game) SkipUnit() {
	id := g.queue.Current()
	if id == "" {
		return
	}
	g.removeFromQueue(id)
	g.setSelected(g.queue.Current())
}

func (g *Game) setSelected(id entity.ID) {
	if g.selected == id {
		return
	}
	if g.selected != "" {
		g.bus.Publish(event.NewUnitEvent(event.UnitDeselected, g, string(g.selected), g.players[g.current].ID, 0, 0))
	}
	g.selected = id
	if id != "" {
		if u := g.findUnit(id); u != nil {
			g.bus.Publish(event.NewUnitEvent(event.UnitSelected, g, string(id), u.PlayerID, u.Position.X, u.Position.Y))
		}
	}
}

// removeFromQueue drops a unit from the activation queue and emits the
// end-of-turn signal when a human player's queue runs dry. The signal is a
// UI hook; it does not advance the turn.
func (g *Game) removeFromQueue(id entity.ID) {
	emptied := g.queue.Remove(id)
	if g.selected == id {
		g.setSelected(g.queue.Current())
	}
	if emptied && g.players[g.current].Human {
		g.bus.Publish(event.NewPlayerEvent(event.EndOfTurn, g, g.players[g.current].ID, ""))
	}
}

// rebuildQueue refills the activation queue for the given player and selects
// the first unit.
func (g *Game) rebuildQueue(playerID int) {
	var own []*entity.Unit
	for _, u := range g.units {
		if u.PlayerID == playerID {
			own = append(own, u)
		}
	}
	g.queue.Rebuild(own)
	g.setSelected(g.queue.Current())
}
