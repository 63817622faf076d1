package gamemap

import "github.com/zyedidia/generic/mapset"

// GameMap is a fixed-size tile grid stored row-major (index = y*Width + x).
type GameMap struct {
	Width, Height int
	Tiles         []Tile
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	return &GameMap{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height), // TileWall is the zero value
	}
}

// Fill sets every tile to t.
func (m *GameMap) Fill(t Tile) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// InBounds reports whether p is within the map boundaries.
func (m *GameMap) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Index returns the linear index of p. Callers must check InBounds first.
func (m *GameMap) Index(p Point) int {
	return p.Y*m.Width + p.X
}

// TryIndex returns the linear index of p, or false when p is off the map.
func (m *GameMap) TryIndex(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.Index(p), true
}

// At returns the tile at p. Out-of-bounds points read as walls.
func (m *GameMap) At(p Point) Tile {
	idx, ok := m.TryIndex(p)
	if !ok {
		return TileWall
	}
	return m.Tiles[idx]
}

// Set replaces the tile at p. Writes outside the map are ignored.
func (m *GameMap) Set(p Point, t Tile) {
	if idx, ok := m.TryIndex(p); ok {
		m.Tiles[idx] = t
	}
}

// CanEnterTile returns true when p is in bounds and floor.
func (m *GameMap) CanEnterTile(p Point) bool {
	idx, ok := m.TryIndex(p)
	return ok && m.Tiles[idx] == TileFloor
}

// Reachable flood-fills from start over enterable tiles using 4-way steps.
// The result is empty when start itself cannot be entered.
func (m *GameMap) Reachable(start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.CanEnterTile(start) {
		return visited
	}
	visited.Put(start)
	queue := []Point{start}
	dirs := [4]Point{East, West, South, North}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			next := cur.Add(d)
			if visited.Has(next) || !m.CanEnterTile(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// CountFloor returns the number of floor tiles.
func (m *GameMap) CountFloor() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}
