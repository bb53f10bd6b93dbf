package gamedata

import (
	"fmt"

	"github.com/asciicast/asciicast/internal/entity"
	"github.com/asciicast/asciicast/internal/world"
)

// Point is a JSON-friendly 2D vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2 converts the point to an entity vector.
func (p Point) Vec2() entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}

// MapDef defines a map and the camera pose it starts with.
type MapDef struct {
	ID    string   `json:"id"`    // Unique identifier (e.g., "sample")
	Name  string   `json:"name"`  // Display name
	Rows  []string `json:"rows"`  // Equal-length rows of '1' (wall) and '.' (open)
	Start Point    `json:"start"` // Starting position in grid space
	Dir   Point    `json:"dir"`   // Initial facing direction
	Plane Point    `json:"plane"` // Initial camera plane
}

// Grid builds the occupancy grid for this map.
func (m *MapDef) Grid() (*world.Grid, error) {
	g, err := world.NewGrid(m.Rows)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}
	if !g.IsOpen(m.Start.X, m.Start.Y) {
		return nil, fmt.Errorf("map %s: start (%.2f, %.2f) is not an open cell", m.ID, m.Start.X, m.Start.Y)
	}
	return g, nil
}

// Player returns a new player at the map's starting pose.
func (m *MapDef) Player() *entity.Player {
	return entity.NewPlayer(m.Start.Vec2(), m.Dir.Vec2(), m.Plane.Vec2())
}

// MapsFile represents the structure of maps.json.
type MapsFile struct {
	Maps []MapDef `json:"maps"`
}

// LoadMaps loads map definitions from the embedded maps.json file.
func LoadMaps() ([]MapDef, error) {
	file, err := Load[MapsFile]("maps.json")
	if err != nil {
		return nil, err
	}
	return file.Maps, nil
}
