package generate

import (
	"errors"
	"fmt"
	"sort"

	"dungeon-crawler/internal/gamemap"

	"go.uber.org/zap"
)

var (
	// ErrGenerationFailed is returned when room placement cannot find enough
	// non-overlapping rooms within Config.MaxAttempts candidate draws.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrInvalidConfig is returned for bounds that can never produce a level.
	ErrInvalidConfig = errors.New("invalid generation config")
)

// Ranger is the random source used for every procedural decision.
// Range returns a uniform integer in [min, max).
type Ranger interface {
	Range(min, max int) int
}

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	NumRooms            int
	MinRoomSize         int // inclusive
	MaxRoomSize         int // exclusive
	EdgeMargin          int // rooms start at least this far from the right/bottom edge
	MaxAttempts         int // candidate rooms drawn before giving up
}

// DefaultConfig returns the classic 80x50, 20-room layout.
func DefaultConfig() Config {
	return Config{
		MapWidth:    80,
		MapHeight:   50,
		NumRooms:    20,
		MinRoomSize: 2,
		MaxRoomSize: 10,
		EdgeMargin:  10,
		MaxAttempts: 10000,
	}
}

// Validate rejects configurations that cannot produce a level, or that
// would let rooms spill past the map edge.
func (c Config) Validate() error {
	switch {
	case c.MapWidth <= 0 || c.MapHeight <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	case c.NumRooms < 1:
		return fmt.Errorf("%w: need at least one room, got %d", ErrInvalidConfig, c.NumRooms)
	case c.MinRoomSize < 1 || c.MaxRoomSize <= c.MinRoomSize:
		return fmt.Errorf("%w: room size range [%d,%d)", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.EdgeMargin < c.MaxRoomSize-1:
		return fmt.Errorf("%w: edge margin %d smaller than largest room %d", ErrInvalidConfig, c.EdgeMargin, c.MaxRoomSize-1)
	case c.MapWidth-c.EdgeMargin <= 1 || c.MapHeight-c.EdgeMargin <= 1:
		return fmt.Errorf("%w: edge margin %d leaves no room on a %dx%d map", ErrInvalidConfig, c.EdgeMargin, c.MapWidth, c.MapHeight)
	case c.MaxAttempts < c.NumRooms:
		return fmt.Errorf("%w: max attempts %d below room count %d", ErrInvalidConfig, c.MaxAttempts, c.NumRooms)
	}
	return nil
}

// Result is a finished level.
type Result struct {
	Map         *gamemap.GameMap
	Rooms       []gamemap.Rect // placement order; Rooms[0] holds the player
	PlayerStart gamemap.Point
}

type builder struct {
	cfg   Config
	rng   Ranger
	log   *zap.Logger
	gmap  *gamemap.GameMap
	rooms []gamemap.Rect
}

// Build generates a level from cfg, drawing every random decision from rng so
// a fixed seed reproduces the same layout. No partial level is returned on error.
func Build(cfg Config, rng Ranger, log *zap.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	b := &builder{
		cfg:  cfg,
		rng:  rng,
		log:  log,
		gmap: gamemap.New(cfg.MapWidth, cfg.MapHeight),
	}

	b.gmap.Fill(gamemap.TileWall)
	attempts, err := b.buildRandomRooms()
	if err != nil {
		return nil, err
	}
	b.buildCorridors()

	res := &Result{
		Map:         b.gmap,
		Rooms:       b.rooms,
		PlayerStart: b.rooms[0].Center(),
	}
	log.Info("level generated",
		zap.Int("rooms", len(res.Rooms)),
		zap.Int("attempts", attempts),
		zap.Int("floor_tiles", res.Map.CountFloor()),
		zap.Stringer("player_start", res.PlayerStart),
	)
	return res, nil
}

// buildRandomRooms places NumRooms non-overlapping rooms and returns how many
// candidates were drawn.
func (b *builder) buildRandomRooms() (int, error) {
	cfg := b.cfg
	attempts := 0
	for len(b.rooms) < cfg.NumRooms {
		if attempts >= cfg.MaxAttempts {
			return attempts, fmt.Errorf("%w: placed %d of %d rooms after %d attempts",
				ErrGenerationFailed, len(b.rooms), cfg.NumRooms, attempts)
		}
		attempts++

		room := gamemap.RectWithSize(
			b.rng.Range(1, cfg.MapWidth-cfg.EdgeMargin),
			b.rng.Range(1, cfg.MapHeight-cfg.EdgeMargin),
			b.rng.Range(cfg.MinRoomSize, cfg.MaxRoomSize),
			b.rng.Range(cfg.MinRoomSize, cfg.MaxRoomSize),
		)
		if b.overlapsExisting(room) {
			b.log.Debug("room rejected", zap.Int("x", room.X1), zap.Int("y", room.Y1))
			continue
		}

		room.Each(func(p gamemap.Point) {
			if p.X > 0 && p.X < cfg.MapWidth && p.Y > 0 && p.Y < cfg.MapHeight {
				b.gmap.Set(p, gamemap.TileFloor)
			}
		})
		b.rooms = append(b.rooms, room)
	}
	return attempts, nil
}

func (b *builder) overlapsExisting(room gamemap.Rect) bool {
	for _, r := range b.rooms {
		if r.Intersects(room) {
			return true
		}
	}
	return false
}

// buildCorridors links each room to its left neighbour after sorting by
// center X, which keeps tunnels short and yields a path through every room.
func (b *builder) buildCorridors() {
	rooms := make([]gamemap.Rect, len(b.rooms))
	copy(rooms, b.rooms)
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Center().X < rooms[j].Center().X
	})

	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		cur := rooms[i].Center()
		carveLShaped(b.gmap, prev, cur, b.rng.Range(0, 2) == 1)
	}
}
