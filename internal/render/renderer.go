package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// CellWidth is the number of terminal columns per map tile. Emoji occupy two.
const CellWidth = 2

// HUDRows is the number of rows reserved below the map for the status line.
const HUDRows = 2

// Renderer presents draw batches on a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// ViewSize returns how many map tiles fit on the current screen.
func (r *Renderer) ViewSize() (w, h int) {
	sw, sh := r.screen.Size()
	return sw / CellWidth, sh - HUDRows
}

// Present clears the screen, draws every command in layer order and the
// status line, then shows the frame.
func (r *Renderer) Present(b *Batch, status Status) {
	r.screen.Clear()
	_, viewH := r.ViewSize()
	for _, c := range b.Commands() {
		if c.Pos.X < 0 || c.Pos.Y < 0 || c.Pos.Y >= viewH {
			continue
		}
		style := tcell.StyleDefault.Foreground(c.FG).Background(c.BG)
		r.putGlyph(c.Pos.X*CellWidth, c.Pos.Y, c.Glyph, style)
	}
	r.DrawHUD(status)
	r.screen.Show()
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < CellWidth {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
