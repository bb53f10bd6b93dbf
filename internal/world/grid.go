package world

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrEmptyGrid is returned when a map has no rows or no columns.
	ErrEmptyGrid = errors.New("grid has zero width or height")
	// ErrRaggedGrid is returned when map rows differ in length.
	ErrRaggedGrid = errors.New("grid rows have unequal length")
	// ErrBadTile is returned for characters that are neither wall nor open.
	ErrBadTile = errors.New("unknown tile character")
)

// Grid is an immutable occupancy map. Cells are stored row-major.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid builds a grid from equal-length rows.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		width:  width,
		height: len(rows),
		tiles:  make([]Tile, 0, width*len(rows)),
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", y, len(runes), width, ErrRaggedGrid)
		}
		for x, ch := range runes {
			tile, ok := parseTile(ch)
			if !ok {
				return nil, fmt.Errorf("row %d col %d %q: %w", y, x, ch, ErrBadTile)
			}
			g.tiles = append(g.tiles, tile)
		}
	}
	return g, nil
}

// ParseGrid reads a text map. Trailing blank lines and carriage returns are ignored.
func ParseGrid(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return NewGrid(lines)
}

// MustGrid builds a grid, panicking on error.
// Use this for maps compiled into the binary.
func MustGrid(rows []string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetTile returns the tile at the given cell. Out of bounds reads as wall.
func (g *Grid) GetTile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.width+x]
}

// IsWall returns true if the cell is solid or outside the grid.
func (g *Grid) IsWall(x, y int) bool {
	return !g.GetTile(x, y).IsPassable()
}

// IsOpen reports whether the cell containing the real coordinate is walkable.
func (g *Grid) IsOpen(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx < 0 || fy < 0 || fx >= float64(g.width) || fy >= float64(g.height) {
		return false
	}
	return g.GetTile(int(fx), int(fy)).IsPassable()
}

// String renders the grid back into map rows.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.GetTile(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
