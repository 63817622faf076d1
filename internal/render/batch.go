package render

import (
	"sort"

	"dungeon-crawler/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Draw layers. Lower layers are drawn first.
const (
	LayerMap      = 0
	LayerEntities = 1
)

// DrawCommand places one glyph at a screen tile.
type DrawCommand struct {
	Layer int
	Pos   gamemap.Point // screen tile, not world coordinate
	Glyph string
	FG    tcell.Color
	BG    tcell.Color
}

// Batch collects the draw commands produced during one tick. The core only
// appends to it; the host decides how and when to present it.
type Batch struct {
	layer int
	cmds  []DrawCommand
}

// NewBatch returns an empty batch targeting LayerMap.
func NewBatch() *Batch {
	return &Batch{cmds: make([]DrawCommand, 0, 1024)}
}

// Target selects the layer for subsequent Set calls.
func (b *Batch) Target(layer int) {
	b.layer = layer
}

// Set queues glyph at screen tile p on the current layer.
func (b *Batch) Set(p gamemap.Point, glyph string, fg, bg tcell.Color) {
	b.cmds = append(b.cmds, DrawCommand{Layer: b.layer, Pos: p, Glyph: glyph, FG: fg, BG: bg})
}

// Len returns the number of queued commands.
func (b *Batch) Len() int {
	return len(b.cmds)
}

// Commands returns the queued commands ordered by layer, preserving
// submission order within a layer.
func (b *Batch) Commands() []DrawCommand {
	out := make([]DrawCommand, len(b.cmds))
	copy(out, b.cmds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Layer < out[j].Layer
	})
	return out
}

// At returns the top-most command at screen tile p, if any.
func (b *Batch) At(p gamemap.Point) (DrawCommand, bool) {
	var found DrawCommand
	ok := false
	for _, c := range b.Commands() {
		if c.Pos == p {
			found, ok = c, true
		}
	}
	return found, ok
}
