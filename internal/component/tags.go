package component

import "dungeon-crawler/internal/ecs"

const (
	CTagPlayer      ecs.ComponentType = 8
	CTagEnemy       ecs.ComponentType = 9
	CTagRandomMover ecs.ComponentType = 10
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEnemy marks an entity the player removes by bumping into it.
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }

// TagRandomMover marks an entity that takes one random cardinal step per
// monster turn.
type TagRandomMover struct{}

func (TagRandomMover) Type() ecs.ComponentType { return CTagRandomMover }
