// Package entity provides the player camera that moves through the world.
package entity

import "math"

// Blocker reports whether a real-valued position may be occupied.
// *world.Grid satisfies it through IsOpen.
type Blocker interface {
	IsOpen(x, y float64) bool
}

// Vec2 is a real-valued 2D vector.
type Vec2 struct {
	X, Y float64
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// rotate applies a 2D rotation matrix.
func (v Vec2) rotate(sin, cos float64) Vec2 {
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Player is the camera pose: a point position, a facing direction and the
// camera plane whose length sets the field of view.
type Player struct {
	Pos Vec2

	dir   Vec2
	plane Vec2
}

// NewPlayer creates a player at the given position and orientation.
func NewPlayer(pos, dir, plane Vec2) *Player {
	return &Player{
		Pos:   pos,
		dir:   dir,
		plane: plane,
	}
}

// Dir returns the facing direction.
func (p *Player) Dir() Vec2 { return p.dir }

// Plane returns the camera plane.
func (p *Player) Plane() Vec2 { return p.plane }

// MoveForward steps along the facing direction if the destination is open.
// It returns false when the move was rejected.
func (p *Player) MoveForward(b Blocker, speed float64) bool {
	return p.moveTo(b, Vec2{p.Pos.X + p.dir.X*speed, p.Pos.Y + p.dir.Y*speed})
}

// MoveBackward steps against the facing direction if the destination is open.
func (p *Player) MoveBackward(b Blocker, speed float64) bool {
	return p.moveTo(b, Vec2{p.Pos.X - p.dir.X*speed, p.Pos.Y - p.dir.Y*speed})
}

func (p *Player) moveTo(b Blocker, next Vec2) bool {
	if !b.IsOpen(next.X, next.Y) {
		return false
	}
	p.Pos = next
	return true
}

// Rotate turns direction and plane together by angle radians.
// Positive angles turn left on screen, negative angles turn right.
func (p *Player) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	p.dir = p.dir.rotate(sin, cos)
	p.plane = p.plane.rotate(sin, cos)
}
