package entity

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// fakeBlocker treats every cell as open except those listed.
type fakeBlocker struct {
	walls map[[2]int]bool
}

func (f fakeBlocker) IsOpen(x, y float64) bool {
	return !f.walls[[2]int{int(math.Floor(x)), int(math.Floor(y))}]
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func newTestPlayer() *Player {
	return NewPlayer(Vec2{8, 8}, Vec2{-1, 0}, Vec2{0, 0.66})
}

func TestMoveRoundTrip(t *testing.T) {
	p := newTestPlayer()
	p.Rotate(0.3)
	start := p.Pos
	open := fakeBlocker{}

	if !p.MoveForward(open, 0.25) {
		t.Fatal("Forward move into open space was rejected")
	}
	if p.Pos == start {
		t.Fatal("Position did not change after forward move")
	}
	if !p.MoveBackward(open, 0.25) {
		t.Fatal("Backward move into open space was rejected")
	}
	if !near(p.Pos.X, start.X) || !near(p.Pos.Y, start.Y) {
		t.Errorf("Round trip ended at %+v, want %+v", p.Pos, start)
	}
}

func TestMoveIntoWallIsIgnored(t *testing.T) {
	p := NewPlayer(Vec2{1.1, 1.5}, Vec2{-1, 0}, Vec2{0, 0.66})
	walls := fakeBlocker{walls: map[[2]int]bool{{0, 1}: true, {2, 1}: true}}

	if p.MoveForward(walls, 0.25) {
		t.Error("Move into wall should be rejected")
	}
	if p.Pos != (Vec2{1.1, 1.5}) {
		t.Errorf("Position changed to %+v", p.Pos)
	}

	// Backward from 1.1 by 1.0 lands in the wall at x=2.
	if p.MoveBackward(walls, 1.0) {
		t.Error("Backward move into wall should be rejected")
	}
	if p.Pos != (Vec2{1.1, 1.5}) {
		t.Errorf("Position changed to %+v", p.Pos)
	}
}

func TestRotateInverse(t *testing.T) {
	p := newTestPlayer()
	dir, plane := p.Dir(), p.Plane()

	p.Rotate(0.15)
	if near(p.Dir().X, dir.X) && near(p.Dir().Y, dir.Y) {
		t.Fatal("Rotate did not change direction")
	}
	p.Rotate(-0.15)

	if !near(p.Dir().X, dir.X) || !near(p.Dir().Y, dir.Y) {
		t.Errorf("Direction %+v, want %+v", p.Dir(), dir)
	}
	if !near(p.Plane().X, plane.X) || !near(p.Plane().Y, plane.Y) {
		t.Errorf("Plane %+v, want %+v", p.Plane(), plane)
	}
}

func TestRotatePreservesLengthsAndAngle(t *testing.T) {
	p := newTestPlayer()
	dirLen, planeLen := p.Dir().Len(), p.Plane().Len()
	dot := func() float64 { return p.Dir().X*p.Plane().X + p.Dir().Y*p.Plane().Y }
	startDot := dot()

	angles := []float64{0.15, 0.15, -0.15, 1.2, -3.0, 0.15, math.Pi, 0.001}
	for i := 0; i < 200; i++ {
		p.Rotate(angles[i%len(angles)])
		if !near(p.Dir().Len(), dirLen) {
			t.Fatalf("step %d: |dir| drifted to %v", i, p.Dir().Len())
		}
		if !near(p.Plane().Len(), planeLen) {
			t.Fatalf("step %d: |plane| drifted to %v", i, p.Plane().Len())
		}
		if !near(dot(), startDot) {
			t.Fatalf("step %d: dir/plane angle drifted", i)
		}
	}
}

func TestRotateLeftConvention(t *testing.T) {
	p := NewPlayer(Vec2{}, Vec2{1, 0}, Vec2{0, 0.66})
	p.Rotate(math.Pi / 2)
	if !near(p.Dir().X, 0) || !near(p.Dir().Y, 1) {
		t.Errorf("Quarter turn gave dir %+v, want (0, 1)", p.Dir())
	}
	if !near(p.Plane().X, -0.66) || !near(p.Plane().Y, 0) {
		t.Errorf("Quarter turn gave plane %+v, want (-0.66, 0)", p.Plane())
	}
}
