package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the information shown on the HUD line.
type Status struct {
	Turn     string
	Seed     int64
	PlayerX  int
	PlayerY  int
	Monsters int
	Message  string
}

func (s Status) String() string {
	return fmt.Sprintf("Turn: %-14s Pos: (%d,%d)  Monsters: %d  Seed: %d",
		s.Turn, s.PlayerX, s.PlayerY, s.Monsters, s.Seed)
}

// DrawHUD renders the separator and status line at the bottom of the screen.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)
	line := s.String()
	if s.Message != "" {
		line += "  " + s.Message
	}
	r.drawText(0, hudY+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
