package component

import (
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

const CPendingMove ecs.ComponentType = 20

// PendingMove is a movement intent. It lives on its own short-lived entity and
// is consumed by the movement resolver in the tick that created it.
type PendingMove struct {
	Entity      ecs.EntityID
	Destination gamemap.Point
}

func (PendingMove) Type() ecs.ComponentType { return CPendingMove }
