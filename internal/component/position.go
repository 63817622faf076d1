package component

import (
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point returns the position as a map coordinate.
func (p Position) Point() gamemap.Point { return gamemap.Pt(p.X, p.Y) }

// At builds a Position from a map coordinate.
func At(p gamemap.Point) Position { return Position{X: p.X, Y: p.Y} }
