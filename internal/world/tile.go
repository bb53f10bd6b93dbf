// Package world provides the occupancy grid the camera moves through.
package world

// Tile represents a single grid cell.
type Tile rune

const (
	// TileWall represents a solid cell that blocks movement and rays.
	TileWall Tile = '1'
	// TileOpen represents an empty cell.
	TileOpen Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileOpen
}

// Rune returns the tile's map character.
func (t Tile) Rune() rune {
	return rune(t)
}

// parseTile maps a map-file character to a tile.
func parseTile(ch rune) (Tile, bool) {
	switch ch {
	case '1', '#':
		return TileWall, true
	case '.', '0', ' ':
		return TileOpen, true
	default:
		return 0, false
	}
}
