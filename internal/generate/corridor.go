package generate

import "dungeon-crawler/internal/gamemap"

// carveLShaped digs an L-shaped tunnel between from and to. horizontalFirst
// only moves the bend; both variants connect the endpoints.
func carveLShaped(gmap *gamemap.GameMap, from, to gamemap.Point, horizontalFirst bool) {
	if horizontalFirst {
		carveH(gmap, from.X, to.X, from.Y)
		carveV(gmap, from.Y, to.Y, to.X)
	} else {
		carveV(gmap, from.Y, to.Y, from.X)
		carveH(gmap, from.X, to.X, to.Y)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		gmap.Set(gamemap.Pt(x, y), gamemap.TileFloor)
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		gmap.Set(gamemap.Pt(x, y), gamemap.TileFloor)
	}
}
