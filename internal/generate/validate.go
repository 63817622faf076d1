package generate

import (
	"errors"
	"fmt"

	"dungeon-crawler/internal/gamemap"
)

var (
	// ErrOverlap is returned by Validate when two rooms intersect.
	ErrOverlap = errors.New("rooms overlap")
	// ErrDisconnected is returned by Validate when a room center cannot be
	// reached from the player start.
	ErrDisconnected = errors.New("room not reachable")
)

// Validate checks a finished level: rooms must not overlap and every room
// center must be reachable from the player start over floor tiles.
func Validate(res *Result) error {
	for i := 0; i < len(res.Rooms); i++ {
		for j := i + 1; j < len(res.Rooms); j++ {
			if res.Rooms[i].Intersects(res.Rooms[j]) {
				return fmt.Errorf("%w: room %d %+v and room %d %+v", ErrOverlap, i, res.Rooms[i], j, res.Rooms[j])
			}
		}
	}
	reach := res.Map.Reachable(res.PlayerStart)
	for i, r := range res.Rooms {
		if c := r.Center(); !reach.Has(c) {
			return fmt.Errorf("%w: room %d center %v", ErrDisconnected, i, c)
		}
	}
	return nil
}

// SpawnPoints returns one monster position per room, skipping the first room
// where the player starts.
func SpawnPoints(rooms []gamemap.Rect) []gamemap.Point {
	if len(rooms) <= 1 {
		return nil
	}
	points := make([]gamemap.Point, 0, len(rooms)-1)
	for _, r := range rooms[1:] {
		points = append(points, r.Center())
	}
	return points
}
