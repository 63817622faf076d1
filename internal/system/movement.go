package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

// MoveResult describes what happened to one pending move.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveGone                      // mover no longer exists or has no position
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveGone:
		return "gone"
	}
	return "unknown"
}

// MoveOutcome records one resolved intent.
type MoveOutcome struct {
	Entity   ecs.EntityID
	From, To gamemap.Point
	Result   MoveResult
}

// ResolveMoves applies every pending move whose destination can be entered
// and drops the rest. Each intent record is destroyed exactly once, whatever
// the outcome. Outcomes are returned in intent order.
func ResolveMoves(w *ecs.World, gmap *gamemap.GameMap) []MoveOutcome {
	intents := w.Query(component.CPendingMove)
	if len(intents) == 0 {
		return nil
	}
	outcomes := make([]MoveOutcome, 0, len(intents))
	for _, intentID := range intents {
		pm := w.Get(intentID, component.CPendingMove).(component.PendingMove)
		w.DestroyEntity(intentID)
		outcomes = append(outcomes, tryMove(w, gmap, pm.Entity, pm.Destination))
	}
	return outcomes
}

// tryMove moves id to dest when the map allows it.
func tryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dest gamemap.Point) MoveOutcome {
	out := MoveOutcome{Entity: id, To: dest}
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		out.Result = MoveGone
		return out
	}
	out.From = posComp.(component.Position).Point()

	if !gmap.CanEnterTile(dest) {
		out.Result = MoveBlocked
		return out
	}
	w.Add(id, component.At(dest))
	out.Result = MoveOK
	return out
}

// Intend queues a move of id to dest for the movement resolver.
func Intend(w *ecs.World, id ecs.EntityID, dest gamemap.Point) ecs.EntityID {
	return w.Spawn(component.PendingMove{Entity: id, Destination: dest})
}
