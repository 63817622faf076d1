package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

// Ranger draws a uniform integer in [min, max).
type Ranger interface {
	Range(min, max int) int
}

// randomSteps is indexed by a draw from [0, 4).
var randomSteps = [4]gamemap.Point{gamemap.West, gamemap.East, gamemap.North, gamemap.South}

// RandomMove queues one random cardinal step for every random mover. All
// draws come from rng so a seeded session replays identically. Returns the
// number of intents queued.
func RandomMove(w *ecs.World, rng Ranger) int {
	n := 0
	for _, id := range w.Query(component.CTagRandomMover, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		step := randomSteps[rng.Range(0, len(randomSteps))]
		Intend(w, id, pos.Point().Add(step))
		n++
	}
	return n
}
