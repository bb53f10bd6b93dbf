package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/asciicast/asciicast/internal/telemetry"
)

const (
	// MinGeneratedSize is the smallest width or height Generate accepts.
	MinGeneratedSize = 7

	minLeafSize = 6 // Partitions narrower than twice this are not split
	minRoomSize = 3
	maxRoomSize = 9
)

// Layout is a generated map together with the rooms carved into it.
type Layout struct {
	Grid  *Grid
	Rooms []Room
}

// Start returns the center of the first room as a real-valued position.
func (l *Layout) Start() (float64, float64) {
	x, y := l.Rooms[0].Center()
	return float64(x) + 0.5, float64(y) + 0.5
}

// partition is a node of the binary space partition.
type partition struct {
	x, y, w, h  int
	left, right *partition
	room        *Room
}

func (p *partition) isLeaf() bool {
	return p.left == nil && p.right == nil
}

// carver holds the mutable cells while a layout is being built.
type carver struct {
	width, height int
	tiles         []Tile
	rooms         []Room
	rng           *rand.Rand
}

// Generate builds a walled map of rooms joined by corridors.
// The same rng seed always yields the same layout.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) (*Layout, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "world.generate")
	defer span.End()

	if width < MinGeneratedSize || height < MinGeneratedSize {
		return nil, fmt.Errorf("generate %dx%d: minimum size is %d: %w", width, height, MinGeneratedSize, ErrEmptyGrid)
	}
	startTime := time.Now()

	c := &carver{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		rng:    rng,
	}
	for i := range c.tiles {
		c.tiles[i] = TileWall
	}

	root := &partition{x: 1, y: 1, w: width - 2, h: height - 2}
	c.split(root)
	c.placeRooms(root)
	c.connect(root)

	grid := &Grid{width: width, height: height, tiles: c.tiles}

	span.SetAttributes(
		attribute.Int("world.width", width),
		attribute.Int("world.height", height),
		attribute.Int("world.room_count", len(c.rooms)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return &Layout{Grid: grid, Rooms: c.rooms}, nil
}

func (c *carver) split(p *partition) {
	var vertical bool
	switch {
	case p.w >= p.h && p.w >= minLeafSize*2:
		vertical = true
	case p.h >= minLeafSize*2:
		vertical = false
	case p.w >= minLeafSize*2:
		vertical = true
	default:
		return
	}

	if vertical {
		cut := minLeafSize + c.rng.Intn(p.w-minLeafSize*2+1)
		p.left = &partition{x: p.x, y: p.y, w: cut, h: p.h}
		p.right = &partition{x: p.x + cut, y: p.y, w: p.w - cut, h: p.h}
	} else {
		cut := minLeafSize + c.rng.Intn(p.h-minLeafSize*2+1)
		p.left = &partition{x: p.x, y: p.y, w: p.w, h: cut}
		p.right = &partition{x: p.x, y: p.y + cut, w: p.w, h: p.h - cut}
	}
	c.split(p.left)
	c.split(p.right)
}

func (c *carver) placeRooms(p *partition) {
	if p == nil {
		return
	}
	if !p.isLeaf() {
		c.placeRooms(p.left)
		c.placeRooms(p.right)
		return
	}

	maxW := min(p.w-2, maxRoomSize)
	maxH := min(p.h-2, maxRoomSize)
	if maxW < minRoomSize || maxH < minRoomSize {
		return
	}
	rw := minRoomSize + c.rng.Intn(maxW-minRoomSize+1)
	rh := minRoomSize + c.rng.Intn(maxH-minRoomSize+1)
	room := Room{
		X:      p.x + 1 + c.rng.Intn(p.w-2-rw+1),
		Y:      p.y + 1 + c.rng.Intn(p.h-2-rh+1),
		Width:  rw,
		Height: rh,
	}
	p.room = &room
	c.rooms = append(c.rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			c.open(x, y)
		}
	}
}

func (c *carver) connect(p *partition) {
	if p == nil || p.isLeaf() {
		return
	}
	c.connect(p.left)
	c.connect(p.right)

	a, b := anyRoom(p.left), anyRoom(p.right)
	if a == nil || b == nil {
		return
	}
	x1, y1 := a.Center()
	x2, y2 := b.Center()
	if c.rng.Intn(2) == 0 {
		c.hline(x1, x2, y1)
		c.vline(y1, y2, x2)
	} else {
		c.vline(y1, y2, x1)
		c.hline(x1, x2, y2)
	}
}

// anyRoom returns the first room found in a subtree.
func anyRoom(p *partition) *Room {
	if p == nil {
		return nil
	}
	if p.room != nil {
		return p.room
	}
	if r := anyRoom(p.left); r != nil {
		return r
	}
	return anyRoom(p.right)
}

func (c *carver) hline(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.open(x, y)
	}
}

func (c *carver) vline(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.open(x, y)
	}
}

// open carves a cell, never touching the border ring.
func (c *carver) open(x, y int) {
	if x > 0 && x < c.width-1 && y > 0 && y < c.height-1 {
		c.tiles[y*c.width+x] = TileOpen
	}
}
