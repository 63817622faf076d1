package generate

import (
	"errors"
	"testing"

	"dungeon-crawler/internal/gamemap"
)

// carvedLevel carves each room to floor and joins consecutive room centers
// with corridors when connect is set.
func carvedLevel(rooms []gamemap.Rect, connect bool) *Result {
	gmap := gamemap.New(30, 20)
	for _, r := range rooms {
		r.Each(func(p gamemap.Point) { gmap.Set(p, gamemap.TileFloor) })
	}
	if connect {
		for i := 1; i < len(rooms); i++ {
			carveLShaped(gmap, rooms[i-1].Center(), rooms[i].Center(), true)
		}
	}
	return &Result{Map: gmap, Rooms: rooms, PlayerStart: rooms[0].Center()}
}

func TestValidate(t *testing.T) {
	apart := []gamemap.Rect{
		gamemap.RectWithSize(2, 2, 4, 4),
		gamemap.RectWithSize(15, 10, 5, 3),
	}
	cases := []struct {
		name string
		res  *Result
		want error
	}{
		{"connected", carvedLevel(apart, true), nil},
		{"walled off", carvedLevel(apart, false), ErrDisconnected},
		{"overlapping", carvedLevel([]gamemap.Rect{
			gamemap.RectWithSize(2, 2, 6, 6),
			gamemap.RectWithSize(5, 5, 6, 6),
		}, true), ErrOverlap},
		{"touching edges", carvedLevel([]gamemap.Rect{
			gamemap.RectWithSize(2, 2, 4, 4),
			gamemap.RectWithSize(6, 2, 4, 4),
		}, true), ErrOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.res)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestValidateDisconnectedAfterCarving(t *testing.T) {
	res := carvedLevel([]gamemap.Rect{
		gamemap.RectWithSize(2, 2, 4, 4),
		gamemap.RectWithSize(15, 10, 5, 3),
	}, true)
	// Cut the corridor, whose horizontal leg runs along the first room's center row.
	res.Map.Set(gamemap.Pt(10, 4), gamemap.TileWall)

	if err := Validate(res); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("Validate() = %v; want ErrDisconnected", err)
	}
}
