package factory

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/data"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// GlyphPlayer is drawn for the player entity.
const GlyphPlayer = "🧙"

// Ranger draws a uniform integer in [min, max).
type Ranger interface {
	Range(min, max int) int
}

// NewPlayer creates the player entity at p.
func NewPlayer(w *ecs.World, p gamemap.Point) ecs.EntityID {
	return w.Spawn(
		component.At(p),
		component.Name("player"),
		component.Renderable{
			Glyph:       GlyphPlayer,
			FGColor:     tcell.ColorYellow,
			BGColor:     tcell.ColorBlack,
			RenderOrder: 10,
		},
		component.TagPlayer{},
	)
}

// NewMonster creates a monster from a template at p. Behaviour tags come
// from the template, so a monster may carry several.
func NewMonster(w *ecs.World, tmpl data.MonsterTemplate, p gamemap.Point) ecs.EntityID {
	id := w.Spawn(
		component.At(p),
		component.Name(tmpl.Name),
		component.Renderable{
			Glyph:       tmpl.Glyph,
			FGColor:     tmpl.FG(),
			BGColor:     tcell.ColorBlack,
			RenderOrder: 5,
		},
	)
	if tmpl.Has(data.BehaviorEnemy) {
		w.Add(id, component.TagEnemy{})
	}
	if tmpl.Has(data.BehaviorRandomMover) {
		w.Add(id, component.TagRandomMover{})
	}
	return id
}

// SpawnMonsters places one randomly chosen monster at each point and returns
// the created IDs in order.
func SpawnMonsters(w *ecs.World, table *data.MonsterTable, points []gamemap.Point, rng Ranger) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(points))
	for _, p := range points {
		tmpl := table.At(rng.Range(0, table.Len()))
		ids = append(ids, NewMonster(w, tmpl, p))
	}
	return ids
}
