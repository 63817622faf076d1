package game

import (
	"fmt"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/data"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/input"
	"dungeon-crawler/internal/render"
	"dungeon-crawler/internal/rng"

	"go.uber.org/zap"
)

// Stats counts what happened during a session.
type Stats struct {
	Ticks           int
	Turns           int // completed player turns
	Moves           int // player moves applied
	Blocked         int // player moves dropped
	MonstersRemoved int
}

// Session owns all state for one level: the map, entities, camera, the
// random source and the turn machine. Tick is the only entry point that
// mutates it and must not be called concurrently.
type Session struct {
	World    *ecs.World
	Map      *gamemap.GameMap
	Rooms    []gamemap.Rect
	Camera   *render.Camera
	RNG      *rng.Source
	Theme    render.Theme
	Schedule *Schedule
	Player   ecs.EntityID

	Turn    TurnState
	Key     input.Key     // key for the current tick, cleared afterwards
	Batch   *render.Batch // draw batch for the current tick
	Message string
	Stats   Stats

	log *zap.Logger
}

// NewSession generates a level from cfg, spawns the player in the first room
// and one monster from table in every other room. Every random draw,
// including later monster moves, comes from src.
func NewSession(cfg *config.Config, table *data.MonsterTable, src *rng.Source, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res, err := generate.Build(cfg.Generation(), src, log)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	w := ecs.NewWorld()
	player := factory.NewPlayer(w, res.PlayerStart)
	monsters := factory.SpawnMonsters(w, table, generate.SpawnPoints(res.Rooms), src)

	s := &Session{
		World:    w,
		Map:      res.Map,
		Rooms:    res.Rooms,
		Camera:   render.NewCamera(res.PlayerStart, cfg.Display.Width, cfg.Display.Height),
		RNG:      src,
		Theme:    render.DefaultTheme,
		Schedule: DefaultSchedule(),
		Player:   player,
		Turn:     AwaitingInput,
		Message:  "Use the arrow keys or hjkl to move. q quits.",
		log:      log,
	}
	log.Info("session started",
		zap.Int64("seed", src.Seed()),
		zap.Stringer("start", res.PlayerStart),
		zap.Int("monsters", len(monsters)),
	)
	log.Debug("schedule\n" + s.Schedule.Describe())
	return s, nil
}

// Tick runs the system group for the current turn state once and returns
// the frame it drew. key is only consumed while awaiting input.
func (s *Session) Tick(key input.Key) (*render.Batch, error) {
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.Schedule == nil {
		err := fmt.Errorf("%w: schedule", ErrMissingResource)
		s.log.Error("tick failed", zap.Error(err))
		return nil, err
	}

	before := s.Turn
	s.Key = key
	s.Batch = render.NewBatch()
	err := s.Schedule.Run(s)
	s.Key = input.KeyNone
	if err != nil {
		s.log.Error("tick failed", zap.Stringer("turn", before), zap.Error(err))
		return nil, err
	}

	s.Stats.Ticks++
	if s.Turn != before {
		s.log.Debug("turn state changed", zap.Stringer("from", before), zap.Stringer("to", s.Turn))
	}
	return s.Batch, nil
}

// require reports ErrMissingResource for the first resource in set the
// session does not hold.
func (s *Session) require(set Resource) error {
	var missing Resource
	set.Each(func(r Resource) {
		if missing == 0 && !s.has(r) {
			missing = r
		}
	})
	if missing != 0 {
		return fmt.Errorf("%w: %v", ErrMissingResource, missing)
	}
	return nil
}

func (s *Session) has(r Resource) bool {
	switch r {
	case ResWorld:
		return s.World != nil
	case ResMap:
		return s.Map != nil
	case ResCamera:
		return s.Camera != nil
	case ResRNG:
		return s.RNG != nil
	case ResBatch:
		return s.Batch != nil
	}
	return true
}

// PlayerPosition returns the player's position, or false once the player
// entity is gone.
func (s *Session) PlayerPosition() (gamemap.Point, bool) {
	if s.World == nil {
		return gamemap.Point{}, false
	}
	c := s.World.Get(s.Player, component.CPosition)
	if c == nil {
		return gamemap.Point{}, false
	}
	return c.(component.Position).Point(), true
}

// Monsters returns how many enemies remain.
func (s *Session) Monsters() int {
	if s.World == nil {
		return 0
	}
	return len(s.World.Query(component.CTagEnemy))
}

// Status summarises the session for the HUD line.
func (s *Session) Status() render.Status {
	st := render.Status{
		Turn:     s.Turn.String(),
		Monsters: s.Monsters(),
		Message:  s.Message,
	}
	if s.RNG != nil {
		st.Seed = s.RNG.Seed()
	}
	if p, ok := s.PlayerPosition(); ok {
		st.PlayerX, st.PlayerY = p.X, p.Y
	}
	return st
}
