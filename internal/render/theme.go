package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs used to draw terrain.
type Theme struct {
	Wall    string
	Floor   string
	WallFG  tcell.Color
	FloorFG tcell.Color
	BG      tcell.Color
}

// DefaultTheme draws brick walls on a dark floor.
var DefaultTheme = Theme{
	Wall:    "🧱",
	Floor:   "·",
	WallFG:  tcell.ColorWhite,
	FloorFG: tcell.ColorGray,
	BG:      tcell.ColorBlack,
}
