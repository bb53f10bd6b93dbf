package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadMaps(t *testing.T) {
	maps, err := LoadMaps()
	if err != nil {
		t.Fatalf("Failed to load maps: %v", err)
	}

	if len(maps) != 2 {
		t.Errorf("Expected 2 maps, got %d", len(maps))
	}

	for _, m := range maps {
		g, err := m.Grid()
		if err != nil {
			t.Errorf("Map %q does not build: %v", m.ID, err)
			continue
		}
		for x := 0; x < g.Width(); x++ {
			if !g.IsWall(x, 0) || !g.IsWall(x, g.Height()-1) {
				t.Errorf("Map %q border open at column %d", m.ID, x)
			}
		}
	}
}

func TestMapRegistry(t *testing.T) {
	registry, err := LoadMapRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	sample := registry.GetByID(DefaultMapID)
	if sample == nil {
		t.Fatal("Sample map not found by ID")
	}

	g, err := sample.Grid()
	if err != nil {
		t.Fatalf("Sample grid: %v", err)
	}
	if g.Width() != 16 || g.Height() != 16 {
		t.Errorf("Expected 16x16 sample map, got %dx%d", g.Width(), g.Height())
	}

	p := sample.Player()
	if p.Pos.X != 8 || p.Pos.Y != 8 {
		t.Errorf("Expected start (8, 8), got %+v", p.Pos)
	}
	if p.Dir().X != -1 || p.Dir().Y != 0 {
		t.Errorf("Expected direction (-1, 0), got %+v", p.Dir())
	}
	if p.Plane().Y != 0.66 {
		t.Errorf("Expected plane y 0.66, got %v", p.Plane().Y)
	}

	if registry.GetByID("missing") != nil {
		t.Error("Unknown ID should return nil")
	}
	if registry.Count() != len(registry.All()) {
		t.Error("Count and All disagree")
	}
}

func TestMapDefRejectsBlockedStart(t *testing.T) {
	m := MapDef{
		ID:    "walled",
		Rows:  []string{"111", "1.1", "111"},
		Start: Point{X: 0.5, Y: 0.5},
	}
	if _, err := m.Grid(); err == nil {
		t.Error("Start inside a wall should be rejected")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#102030")
	if c != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Errorf("Unexpected colour %v", c)
	}
}

func TestPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, glyph := range "#MXx-.," {
		if p.Color(glyph) == tcell.ColorDefault {
			t.Errorf("Glyph %q has no colour", glyph)
		}
	}
	if p.Color('?') != tcell.ColorDefault {
		t.Error("Unknown glyph should use the default colour")
	}

	_, err = NewPalette(PaletteFile{Glyphs: []GlyphColor{{Glyph: "ab", Color: "#FFFFFF"}}, Status: "#FFFFFF"})
	if err == nil {
		t.Error("Multi-character glyph should be rejected")
	}
}
