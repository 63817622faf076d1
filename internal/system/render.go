package system

import (
	"sort"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/render"
)

// RenderMap draws the terrain inside the camera window onto the map layer.
func RenderMap(gmap *gamemap.GameMap, cam *render.Camera, theme render.Theme, batch *render.Batch) {
	batch.Target(render.LayerMap)
	offset := cam.Offset()
	for y := cam.Top; y <= cam.Bottom; y++ {
		for x := cam.Left; x < cam.Right; x++ {
			p := gamemap.Pt(x, y)
			if !gmap.InBounds(p) {
				continue
			}
			glyph, fg := theme.Wall, theme.WallFG
			if gmap.At(p) == gamemap.TileFloor {
				glyph, fg = theme.Floor, theme.FloorFG
			}
			batch.Set(p.Sub(offset), glyph, fg, theme.BG)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   gamemap.Point
	rend  component.Renderable
}

// RenderEntities draws every visible entity with Renderable + Position onto
// the entity layer, ordered by RenderOrder.
func RenderEntities(w *ecs.World, cam *render.Camera, batch *render.Batch) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position).Point()
		if !cam.Visible(pos) {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Sort ascending by render order (lower = drawn first / behind).
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	batch.Target(render.LayerEntities)
	offset := cam.Offset()
	for _, e := range entities {
		batch.Set(e.pos.Sub(offset), e.rend.Glyph, e.rend.FGColor, e.rend.BGColor)
	}
}
