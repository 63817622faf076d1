package game

import (
	"fmt"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/system"

	"go.uber.org/zap"
)

// DefaultSchedule wires the three turn phases. Every group ends with the
// render systems so each tick yields a full frame.
func DefaultSchedule() *Schedule {
	sc := NewSchedule()
	sc.Bind(AwaitingInput, playerInputSystem, renderMapSystem, renderEntitiesSystem)
	sc.Bind(PlayerTurn, resolveMovesSystem, collisionsSystem, endTurnSystem, renderMapSystem, renderEntitiesSystem)
	sc.Bind(MonsterTurn, randomMoveSystem, resolveMovesSystem, endTurnSystem, renderMapSystem, renderEntitiesSystem)
	return sc
}

var playerInputSystem = System{
	Name:   "player_input",
	Reads:  ResKey,
	Writes: ResWorld | ResTurn,
	Run: func(s *Session) error {
		if system.PlayerInput(s.World, s.Key) {
			s.Turn = PlayerTurn
		}
		return nil
	},
}

var resolveMovesSystem = System{
	Name:   "resolve_moves",
	Reads:  ResMap,
	Writes: ResWorld | ResCamera,
	Run: func(s *Session) error {
		for _, o := range system.ResolveMoves(s.World, s.Map) {
			if o.Entity != s.Player {
				continue
			}
			switch o.Result {
			case system.MoveOK:
				s.Stats.Moves++
				s.Camera.OnPlayerMove(o.To)
			case system.MoveBlocked:
				s.Stats.Blocked++
				s.log.Debug("move blocked", zap.Stringer("to", o.To))
			}
		}
		return nil
	},
}

var collisionsSystem = System{
	Name:   "resolve_collisions",
	Writes: ResWorld,
	Run: func(s *Session) error {
		for _, id := range system.ResolveCollisions(s.World) {
			name := entityName(s.World, id)
			s.Stats.MonstersRemoved++
			s.Message = fmt.Sprintf("You defeat the %s.", name)
			s.log.Debug("monster removed", zap.Stringer("entity", id), zap.String("name", name))
		}
		return nil
	},
}

var randomMoveSystem = System{
	Name:   "random_move",
	Reads:  ResRNG,
	Writes: ResWorld,
	Run: func(s *Session) error {
		system.RandomMove(s.World, s.RNG)
		return nil
	},
}

var endTurnSystem = System{
	Name:   "end_turn",
	Writes: ResTurn,
	Run: func(s *Session) error {
		if s.Turn == PlayerTurn {
			s.Stats.Turns++
		}
		s.Turn = s.Turn.next()
		return nil
	},
}

var renderMapSystem = System{
	Name:   "render_map",
	Reads:  ResMap | ResCamera,
	Writes: ResBatch,
	Run: func(s *Session) error {
		system.RenderMap(s.Map, s.Camera, s.Theme, s.Batch)
		return nil
	},
}

var renderEntitiesSystem = System{
	Name:   "render_entities",
	Reads:  ResWorld | ResCamera,
	Writes: ResBatch,
	Run: func(s *Session) error {
		system.RenderEntities(s.World, s.Camera, s.Batch)
		return nil
	},
}

func entityName(w *ecs.World, id ecs.EntityID) string {
	if n := w.Get(id, component.CName); n != nil {
		return string(n.(component.Name))
	}
	return "creature"
}
