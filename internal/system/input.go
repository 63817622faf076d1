package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/input"
)

// PlayerInput turns a directional key into a pending move for the player.
// It reports whether the key was a direction; other keys produce nothing.
func PlayerInput(w *ecs.World, key input.Key) bool {
	delta, ok := input.Delta(key)
	if !ok {
		return false
	}
	for _, id := range w.Query(component.CTagPlayer, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		Intend(w, id, pos.Point().Add(delta))
	}
	return true
}
