package gamemap

// Tile identifies the type of a map cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	}
	return "unknown"
}
