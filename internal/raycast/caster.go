// Package raycast turns a grid and a camera pose into a text frame using
// grid-aligned DDA ray traversal.
package raycast

import (
	"math"

	"github.com/asciicast/asciicast/internal/entity"
)

// Far stands in for infinity: the delta distance of an axis the ray never
// moves along, and the distance reported for rays that leave the grid.
const Far = 1e30

// Walls is the read-only view of the map the caster needs.
type Walls interface {
	InBounds(x, y int) bool
	IsWall(x, y int) bool
}

// Side is the grid axis crossed to reach the hit cell.
type Side int

const (
	// SideX means the ray crossed a vertical grid line (x changed last).
	SideX Side = iota
	// SideY means the ray crossed a horizontal grid line (y changed last).
	SideY
)

// String returns the axis name.
func (s Side) String() string {
	if s == SideY {
		return "y"
	}
	return "x"
}

// RayHit is the outcome of casting one column's ray.
type RayHit struct {
	Distance     float64 // Perpendicular distance to the wall, Far on a miss
	Side         Side
	StepX, StepY int
	MapX, MapY   int  // Last cell visited
	Hit          bool // False when the ray left the grid
}

// CameraX maps a screen column to camera space, -1 at the left edge.
func CameraX(column, screenWidth int) float64 {
	return 2*float64(column)/float64(screenWidth) - 1
}

// Cast traces the ray for one screen column.
func Cast(walls Walls, p *entity.Player, column, screenWidth int) RayHit {
	dir, plane := p.Dir(), p.Plane()
	cameraX := CameraX(column, screenWidth)
	return CastRay(walls, p.Pos, entity.Vec2{
		X: dir.X + plane.X*cameraX,
		Y: dir.Y + plane.Y*cameraX,
	})
}

// CastRay walks the grid from pos along rayDir until it enters a wall cell
// or leaves the grid.
func CastRay(walls Walls, pos, rayDir entity.Vec2) RayHit {
	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	deltaDistX := Far
	if rayDir.X != 0 {
		deltaDistX = math.Abs(1 / rayDir.X)
	}
	deltaDistY := Far
	if rayDir.Y != 0 {
		deltaDistY = math.Abs(1 / rayDir.Y)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDir.X < 0 {
		stepX = -1
		sideDistX = (pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - pos.X) * deltaDistX
	}
	if rayDir.Y < 0 {
		stepY = -1
		sideDistY = (pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - pos.Y) * deltaDistY
	}

	hit := RayHit{StepX: stepX, StepY: stepY}
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			hit.Side = SideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			hit.Side = SideY
		}
		hit.MapX, hit.MapY = mapX, mapY

		if !walls.InBounds(mapX, mapY) {
			hit.Distance = Far
			return hit
		}
		if walls.IsWall(mapX, mapY) {
			break
		}
	}

	hit.Hit = true
	if hit.Side == SideX {
		hit.Distance = (float64(mapX) - pos.X + float64(1-stepX)/2) / rayDir.X
	} else {
		hit.Distance = (float64(mapY) - pos.Y + float64(1-stepY)/2) / rayDir.Y
	}
	return hit
}
