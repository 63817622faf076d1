package component

import (
	"dungeon-crawler/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const (
	CRenderable ecs.ComponentType = 3
	CName       ecs.ComponentType = 4
)

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// Name is a display name used in the status line and logs.
type Name string

func (Name) Type() ecs.ComponentType { return CName }
