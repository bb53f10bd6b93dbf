package world

import (
	"errors"
	"testing"
)

var testRows = []string{
	"11111",
	"1...1",
	"1.1.1",
	"1...1",
	"11111",
}

func TestNewGridDimensions(t *testing.T) {
	g, err := NewGrid(testRows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 5 || g.Height() != 5 {
		t.Errorf("Expected 5x5, got %dx%d", g.Width(), g.Height())
	}
	if g.String() != "11111\n1...1\n1.1.1\n1...1\n11111\n" {
		t.Errorf("Unexpected round trip:\n%s", g.String())
	}
}

func TestNewGridRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrEmptyGrid},
		{"empty row", []string{""}, ErrEmptyGrid},
		{"ragged", []string{"111", "11"}, ErrRaggedGrid},
		{"bad tile", []string{"1x1"}, ErrBadTile},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.rows)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("###\r\n#.#\r\n###\n\n")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("Expected 3x3, got %dx%d", g.Width(), g.Height())
	}
	if !g.IsWall(0, 0) || g.IsWall(1, 1) {
		t.Error("Tiles not parsed as expected")
	}
}

func TestIsWall(t *testing.T) {
	g := MustGrid(testRows)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 1, false},
		{2, 2, true},
		{3, 3, false},
		{-1, 2, true},
		{2, -1, true},
		{5, 2, true},
		{2, 5, true},
	}

	for _, tt := range tests {
		if got := g.IsWall(tt.x, tt.y); got != tt.want {
			t.Errorf("IsWall(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIsOpen(t *testing.T) {
	g := MustGrid(testRows)

	tests := []struct {
		x, y float64
		want bool
	}{
		{1.5, 1.5, true},
		{1.0, 1.0, true},
		{1.999, 3.999, true},
		{2.5, 2.5, false},
		{0.99, 1.5, false},
		{-0.5, 1.5, false}, // floors to -1, not 0
		{1.5, 5.0, false},
		{100, 100, false},
	}

	for _, tt := range tests {
		if got := g.IsOpen(tt.x, tt.y); got != tt.want {
			t.Errorf("IsOpen(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
