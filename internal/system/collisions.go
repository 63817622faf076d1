package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
)

// ResolveCollisions marks every enemy standing on the player's tile for
// destruction. The removal takes effect at the next World.Flush.
func ResolveCollisions(w *ecs.World) []ecs.EntityID {
	player := w.First(component.CTagPlayer, component.CPosition)
	if player == ecs.NilEntity {
		return nil
	}
	playerPos := w.Get(player, component.CPosition).(component.Position)

	var hit []ecs.EntityID
	for _, id := range w.Query(component.CTagEnemy, component.CPosition) {
		if id == player {
			continue
		}
		if w.Get(id, component.CPosition).(component.Position) == playerPos {
			w.MarkForDestruction(id)
			hit = append(hit, id)
		}
	}
	return hit
}
