package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// GlyphColor assigns a colour to one frame glyph.
type GlyphColor struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Glyphs []GlyphColor `json:"glyphs"`
	Status string       `json:"status"`
}

// Palette maps frame glyphs to terminal colours.
type Palette struct {
	colors map[rune]tcell.Color
	status tcell.Color
}

// NewPalette parses every colour in the file. Any bad entry fails the whole palette.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{colors: make(map[rune]tcell.Color, len(file.Glyphs))}
	for _, gc := range file.Glyphs {
		runes := []rune(gc.Glyph)
		if len(runes) != 1 {
			return nil, fmt.Errorf("palette glyph %q must be a single character", gc.Glyph)
		}
		color, err := ParseHexColor(gc.Color)
		if err != nil {
			return nil, fmt.Errorf("palette glyph %q: %w", gc.Glyph, err)
		}
		p.colors[runes[0]] = color
	}

	status, err := ParseHexColor(file.Status)
	if err != nil {
		return nil, fmt.Errorf("palette status: %w", err)
	}
	p.status = status
	return p, nil
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// Color returns the colour for a glyph, or the terminal default.
func (p *Palette) Color(glyph rune) tcell.Color {
	if c, ok := p.colors[glyph]; ok {
		return c
	}
	return tcell.ColorDefault
}

// Status returns the colour of the status line.
func (p *Palette) Status() tcell.Color {
	return p.status
}
